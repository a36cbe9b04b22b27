package analyzer

import (
	"strings"

	"github.com/doclens/doclens/apimodels"
)

// checkSpelling reports each table entry whose incorrect form occurs as a
// whole lowercase token in text. An entry is reported at most once no
// matter how often the token repeats; findings follow table order.
func checkSpelling(text string, table *Table) []apimodels.SpellingError {
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tokens[tok] = struct{}{}
	}

	findings := []apimodels.SpellingError{}
	for _, entry := range table.Spelling {
		if _, ok := tokens[strings.ToLower(entry.Incorrect)]; ok {
			findings = append(findings, apimodels.SpellingError{
				Original:  entry.Incorrect,
				Corrected: entry.Correct,
			})
		}
	}
	return findings
}
