package analyzer

import "github.com/doclens/doclens/apimodels"

// checkStyle reports at most one finding per rule: the first match of
// the rule's phrase, even when the phrase occurs again later. Style
// suggestions are illustrative, not exhaustive.
func checkStyle(text string, table *Table) []apimodels.StyleSuggestion {
	findings := []apimodels.StyleSuggestion{}
	for _, rule := range table.Style {
		if m := rule.Pattern.FindString(text); m != "" {
			findings = append(findings, apimodels.StyleSuggestion{
				Original:   m,
				Suggestion: rule.Suggestion,
			})
		}
	}
	return findings
}
