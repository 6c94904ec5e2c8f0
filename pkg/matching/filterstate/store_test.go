package filterstate

import (
	"context"
	"testing"

	"talentflow-be/pkg/matching"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()
	c := matching.DefaultCriteria().
		WithSearch("legal").
		WithLanguagePairs([]string{"en → fr"}).
		WithExperienceRange(fptr(3), nil).
		WithStatus("Approved")

	err := store.Save(context.Background(), owner, c)
	assert.NoError(t, err)

	loaded, err := store.Load(context.Background(), owner)
	assert.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	store := NewMemoryStore()

	loaded, err := store.Load(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.True(t, loaded.IsDefault())
}

func TestSavingDefaultsClearsEntry(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()

	assert.NoError(t, store.Save(context.Background(), owner, matching.DefaultCriteria().WithSearch("x")))
	assert.NoError(t, store.Save(context.Background(), owner, matching.DefaultCriteria()))

	loaded, err := store.Load(context.Background(), owner)
	assert.NoError(t, err)
	assert.True(t, loaded.IsDefault())
}

func TestCorruptPayloadFallsBackToDefaults(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()
	store.seed(owner, []byte("{not json"))

	loaded, err := store.Load(context.Background(), owner)

	assert.NoError(t, err)
	assert.True(t, loaded.IsDefault())
}

func TestCorruptPayloadIsDroppedOnLoad(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()
	store.seed(owner, []byte("{not json"))

	_, err := store.Load(context.Background(), owner)
	assert.NoError(t, err)

	_, found := store.cache.Get(KeyPrefix + owner.String())
	assert.False(t, found)
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()
	// Partial payload: only one field was non-default at save time.
	store.seed(owner, []byte(`{"search":"medical"}`))

	loaded, err := store.Load(context.Background(), owner)

	assert.NoError(t, err)
	assert.Equal(t, "medical", loaded.Search)
	// Untouched fields keep their sentinel defaults.
	assert.Equal(t, matching.FilterAll, loaded.Status)
	assert.Equal(t, matching.QuizFilterAll, loaded.QuizPassed)
	assert.Equal(t, matching.FilterAll, loaded.Availability)
}

func TestEncodeSkipsDefaults(t *testing.T) {
	_, ok := Encode(matching.DefaultCriteria())
	assert.False(t, ok)

	data, ok := Encode(matching.DefaultCriteria().WithSearch("x"))
	assert.True(t, ok)
	assert.JSONEq(t, `{"search":"x"}`, string(data))
}

func TestClear(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()

	assert.NoError(t, store.Save(context.Background(), owner, matching.DefaultCriteria().WithSearch("x")))
	assert.NoError(t, store.Clear(context.Background(), owner))

	loaded, err := store.Load(context.Background(), owner)
	assert.NoError(t, err)
	assert.True(t, loaded.IsDefault())
}
