package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKnownForms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"en", "en"},
		{"en-GB", "en"},
		{"English", "en"},
		{"French", "fr"},
		{"Fransızca", "fr"},
		{"pt-BR", "pt"},
		{"Türkçe", "tr"},
		{"zh-TW", "zh"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.raw), "Normalize(%q)", c.raw)
	}
}

func TestNormalizePassThrough(t *testing.T) {
	// Unrecognized labels must not break filtering, only fail to normalize.
	assert.Equal(t, "Klingon", Normalize("Klingon"))
	assert.Equal(t, "xx-YY", Normalize("xx-YY"))
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "English", DisplayName("en"))
	assert.Equal(t, "xyz", DisplayName("xyz"))
}

func TestRoundTripEveryKnownCode(t *testing.T) {
	for code := range names {
		name := DisplayName(code)
		assert.Equal(t, name, DisplayName(Normalize(name)), "round trip for %q", code)
	}
}

func TestPairKeyDirectionMatters(t *testing.T) {
	assert.Equal(t, "en → fr", PairKey("English", "French"))
	assert.Equal(t, "fr → en", PairKey("French", "English"))
	assert.NotEqual(t, PairKey("English", "French"), PairKey("French", "English"))
}

func TestPairKeyMixedRepresentations(t *testing.T) {
	// Codes, names and localized names all build the same key.
	assert.Equal(t, PairKey("en", "fr"), PairKey("English", "Fransızca"))
}

func TestDisplayPair(t *testing.T) {
	assert.Equal(t, "English → French", DisplayPair("en-US", "Fransızca"))
}
