package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePipelineStageValidValues(t *testing.T) {
	valid := []string{
		"New Application", "Form Sent", "Price Negotiation", "Test Sent",
		"Approved", "On Hold", "Rejected", "Red Flag",
	}
	for _, s := range valid {
		got, err := ParsePipelineStage(s)
		assert.NoError(t, err, s)
		assert.Equal(t, s, string(got))
	}
}

func TestParsePipelineStageInvalid(t *testing.T) {
	for _, s := range []string{"", "Hired", "approved", "New"} {
		_, err := ParsePipelineStage(s)
		assert.Error(t, err, "%q should not parse", s)
	}
}

func TestReviewStatusIsNotAPipelineStage(t *testing.T) {
	// The intake review list uses its own status set; its values must not
	// leak into the pipeline enum.
	_, err := ParsePipelineStage(string(ReviewStatusInterviewScheduled))
	assert.Error(t, err)
}

func TestPipelineStagesOrder(t *testing.T) {
	stages := PipelineStages()
	assert.Len(t, stages, 8)
	assert.Equal(t, StageNewApplication, stages[0])
	assert.Equal(t, StageRedFlag, stages[len(stages)-1])
}
