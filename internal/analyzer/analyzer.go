package analyzer

import (
	"log/slog"

	"github.com/doclens/doclens/apimodels"
)

// Analyzer runs language detection and the three pattern checkers over a
// document. It holds only the immutable pattern tables, so one instance
// is safe for unlimited concurrent use.
type Analyzer struct {
	tables Tables
}

func New(tables Tables) *Analyzer {
	return &Analyzer{tables: tables}
}

// Analyze detects the document's language, runs the spelling, grammar,
// and style checks against that language's table, and assembles the
// result. It never fails: a panic in one checker degrades that category
// to an empty list, and anything worse degrades to an all-empty result
// that still carries the title and best-effort language.
func (a *Analyzer) Analyze(req apimodels.AnalysisRequest) apimodels.AnalysisResult {
	lang := DetectLanguage(req.Content)

	result := apimodels.AnalysisResult{
		DocumentTitle:    req.Title,
		Language:         string(lang),
		SpellingErrors:   []apimodels.SpellingError{},
		GrammarErrors:    []apimodels.GrammarError{},
		StyleSuggestions: []apimodels.StyleSuggestion{},
	}

	table, ok := a.tables[lang]
	if !ok {
		slog.Warn("no pattern table for language", "language", lang)
		return result
	}

	result.SpellingErrors = runChecker("spelling", func() []apimodels.SpellingError {
		return checkSpelling(req.Content, table)
	})
	result.GrammarErrors = runChecker("grammar", func() []apimodels.GrammarError {
		return checkGrammar(req.Content, table)
	})
	result.StyleSuggestions = runChecker("style", func() []apimodels.StyleSuggestion {
		return checkStyle(req.Content, table)
	})
	return result
}

// runChecker isolates one check so a panic there costs only that
// category's findings, not the whole request.
func runChecker[T any](name string, check func() []T) (findings []T) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("checker failed, returning empty findings", "checker", name, "panic", r)
			findings = []T{}
		}
	}()
	return check()
}
