package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService([]string{"receive", "separate", "yalnız"})
	require.NoError(t, err)
	return svc
}

func TestSuggestKnownMisspelling(t *testing.T) {
	svc := newTestService(t)
	suggestions := svc.Suggest("recieve", 5)
	assert.Contains(t, suggestions, "receive")
}

func TestSuggestExcludesInputWord(t *testing.T) {
	svc := newTestService(t)
	assert.NotContains(t, svc.Suggest("receive", 5), "receive")
}

func TestSuggestRespectsMax(t *testing.T) {
	svc := newTestService(t)
	assert.LessOrEqual(t, len(svc.Suggest("recieve", 1)), 1)
}

func TestSuggestEmptyWord(t *testing.T) {
	svc := newTestService(t)
	assert.Empty(t, svc.Suggest("", 5))
	assert.Empty(t, svc.Suggest("   ", 5))
}

func TestSuggestExtraVocabularyIsTrained(t *testing.T) {
	svc := newTestService(t)
	suggestions := svc.Suggest("yalniz", 5)
	assert.Contains(t, suggestions, "yalnız")
}
