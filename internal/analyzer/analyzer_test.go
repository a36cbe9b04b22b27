package analyzer

import (
	"regexp"
	"testing"

	"github.com/doclens/doclens/apimodels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEnglishDocument(t *testing.T) {
	a := New(DefaultTables())
	result := a.Analyze(apimodels.AnalysisRequest{
		Title:   "report.txt",
		Content: "recieve and seperate",
	})

	assert.Equal(t, "report.txt", result.DocumentTitle)
	assert.Equal(t, "English", result.Language)
	require.Len(t, result.SpellingErrors, 2)
	assert.Equal(t, "recieve", result.SpellingErrors[0].Original)
	assert.Equal(t, "seperate", result.SpellingErrors[1].Original)
	assert.Empty(t, result.GrammarErrors)
	assert.Empty(t, result.StyleSuggestions)
}

func TestAnalyzeEmptyContent(t *testing.T) {
	a := New(DefaultTables())
	result := a.Analyze(apimodels.AnalysisRequest{Title: "empty"})

	assert.Equal(t, "English", result.Language)
	assert.Empty(t, result.SpellingErrors)
	assert.Empty(t, result.GrammarErrors)
	assert.Empty(t, result.StyleSuggestions)
}

func TestAnalyzeUsesDetectedLanguageTable(t *testing.T) {
	a := New(DefaultTables())
	// "herkez" is a Turkish table entry; the diacritics force Turkish
	// detection so the Turkish table is the one consulted.
	result := a.Analyze(apimodels.AnalysisRequest{
		Title:   "notlar",
		Content: "herkez dağa çıktı",
	})

	assert.Equal(t, "Turkish", result.Language)
	require.Len(t, result.SpellingErrors, 1)
	assert.Equal(t, "herkes", result.SpellingErrors[0].Corrected)
}

func TestAnalyzeDoesNotMixTables(t *testing.T) {
	a := New(DefaultTables())
	// "recieve" is only in the English table; with Turkish detected it
	// must not be flagged.
	result := a.Analyze(apimodels.AnalysisRequest{
		Title:   "karışık",
		Content: "recieve çğış ve bir",
	})

	assert.Equal(t, "Turkish", result.Language)
	assert.Empty(t, result.SpellingErrors)
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := New(DefaultTables())
	req := apimodels.AnalysisRequest{
		Title:   "doc",
		Content: "i dont know, in order to recieve you should of asked",
	}

	first := a.Analyze(req)
	second := a.Analyze(req)
	assert.Equal(t, first, second)
}

func TestAnalyzeCheckerPanicDegradesToEmpty(t *testing.T) {
	tables := DefaultTables()
	// A nil pattern makes the grammar checker panic on first use.
	tables[English].Grammar = []GrammarRule{{Pattern: nil, Explanation: "boom"}}
	a := New(tables)

	result := a.Analyze(apimodels.AnalysisRequest{
		Title:   "doc",
		Content: "recieve this",
	})

	// Grammar degraded, the other categories still ran.
	assert.Empty(t, result.GrammarErrors)
	assert.Len(t, result.SpellingErrors, 1)
	assert.Equal(t, "English", result.Language)
}

func TestTablesVocabulary(t *testing.T) {
	vocab := DefaultTables().Vocabulary()
	assert.Contains(t, vocab, "receive")
	assert.Contains(t, vocab, "herkes")
	// Multi-word corrections are split into individual words.
	assert.Contains(t, vocab, "bir")
	assert.Contains(t, vocab, "şey")
}

func TestAnalyzeCustomTables(t *testing.T) {
	tables := Tables{
		English: {
			Spelling: []SpellingEntry{{"teh", "the"}},
			Grammar: []GrammarRule{{
				Pattern:     regexp.MustCompile(`\bfoo\b`),
				Explanation: "no foo",
				Template:    "bar",
			}},
		},
	}
	a := New(tables)
	result := a.Analyze(apimodels.AnalysisRequest{Title: "d", Content: "teh foo"})

	require.Len(t, result.SpellingErrors, 1)
	require.Len(t, result.GrammarErrors, 1)
	// Corrected is always the full-document rewrite, not just the span.
	assert.Equal(t, "teh bar", result.GrammarErrors[0].Corrected)
}
