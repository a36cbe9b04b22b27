package analyzer

import "github.com/doclens/doclens/apimodels"

// checkGrammar reports one finding per regex match, per rule, in rule
// order. The Corrected field is the rule's template substituted over the
// whole document, so two matches of one rule yield two findings with an
// identical Corrected value, and edits from other rules are never
// composed in. That full-document rewrite is a long-standing quirk of
// the result shape; consumers rely on it, so it is kept as is.
func checkGrammar(text string, table *Table) []apimodels.GrammarError {
	findings := []apimodels.GrammarError{}
	for _, rule := range table.Grammar {
		matches := rule.Pattern.FindAllString(text, -1)
		if matches == nil {
			continue
		}
		corrected := rule.Pattern.ReplaceAllString(text, rule.Template)
		for _, m := range matches {
			findings = append(findings, apimodels.GrammarError{
				Original:    m,
				Explanation: rule.Explanation,
				Corrected:   corrected,
			})
		}
	}
	return findings
}
