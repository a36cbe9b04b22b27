package analyzer

import "strings"

// Language is one of the four languages the analyzer understands.
type Language string

const (
	English Language = "English"
	Turkish Language = "Turkish"
	German  Language = "German"
	French  Language = "French"
)

// languageProfile holds the detection features for one non-English language.
type languageProfile struct {
	lang        Language
	diacritics  string
	commonWords []string
}

// profiles is evaluated in order; on equal scores the earlier entry wins,
// so ties resolve Turkish > German > French. English never scores and is
// returned only when every profile scores zero.
var profiles = []languageProfile{
	{
		lang:        Turkish,
		diacritics:  "çğıöşüÇĞİÖŞÜ",
		commonWords: []string{"ve", "bir", "bu", "için", "ile"},
	},
	{
		lang:        German,
		diacritics:  "äöüßÄÖÜ",
		commonWords: []string{"und", "der", "die", "das", "ist"},
	},
	{
		lang:        French,
		diacritics:  "éèêëàâîïôûùüçœÉÈÊËÀÂÎÏÔÛÙÜÇŒ",
		commonWords: []string{"et", "le", "la", "les", "un"},
	},
}

// DetectLanguage scores text against each language's diacritic set and
// common-word list and returns the best match. Diacritics weigh double
// against common-word hits. Empty or feature-free text is English.
func DetectLanguage(text string) Language {
	tokens := strings.Fields(strings.ToLower(text))

	best := English
	bestScore := 0
	for _, p := range profiles {
		score := 2*countDiacritics(text, p.diacritics) + countCommonWords(tokens, p.commonWords)
		if score > bestScore {
			best = p.lang
			bestScore = score
		}
	}
	return best
}

func countDiacritics(text, set string) int {
	n := 0
	for _, r := range text {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

func countCommonWords(tokens []string, words []string) int {
	n := 0
	for _, tok := range tokens {
		for _, w := range words {
			if tok == w {
				n++
				break
			}
		}
	}
	return n
}
