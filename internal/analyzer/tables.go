package analyzer

import (
	"regexp"
	"strings"
)

// SpellingEntry maps one misspelled token to its correction.
type SpellingEntry struct {
	Incorrect string
	Correct   string
}

// GrammarRule flags every match of Pattern and proposes the whole text
// rewritten with Template (regexp replacement syntax, $1 groups allowed).
type GrammarRule struct {
	Pattern     *regexp.Regexp
	Explanation string
	Template    string
}

// StyleRule flags the first match of Pattern with a fixed suggestion.
type StyleRule struct {
	Pattern    *regexp.Regexp
	Suggestion string
}

// Table holds the pattern data for one language. Entries and rules are
// ordered slices; findings are always reported in declaration order.
type Table struct {
	Spelling []SpellingEntry
	Grammar  []GrammarRule
	Style    []StyleRule
}

// Tables is the full per-language pattern configuration. Built once at
// startup and injected into the Analyzer; never mutated afterwards.
type Tables map[Language]*Table

// Vocabulary returns every correction word the tables know about, for
// training the suggestion model. Multi-word corrections are split.
func (t Tables) Vocabulary() []string {
	words := []string{}
	for _, lang := range []Language{English, Turkish, German, French} {
		table, ok := t[lang]
		if !ok {
			continue
		}
		for _, entry := range table.Spelling {
			words = append(words, strings.Fields(strings.ToLower(entry.Correct))...)
		}
	}
	return words
}

// DefaultTables returns the built-in pattern configuration.
func DefaultTables() Tables {
	return Tables{
		English: {
			Spelling: []SpellingEntry{
				{"recieve", "receive"},
				{"seperate", "separate"},
				{"definately", "definitely"},
				{"occured", "occurred"},
				{"untill", "until"},
			},
			Grammar: []GrammarRule{
				{
					Pattern:     regexp.MustCompile(`\bshould of\b`),
					Explanation: "Use 'should have', not 'should of'.",
					Template:    "should have",
				},
				{
					Pattern:     regexp.MustCompile(`\b([Tt]heir) (is|are)\b`),
					Explanation: "'Their' is possessive; use 'there' to state existence.",
					Template:    "there $2",
				},
				{
					Pattern:     regexp.MustCompile(`\bdont\b`),
					Explanation: "Contractions need an apostrophe: 'don't'.",
					Template:    "don't",
				},
			},
			Style: []StyleRule{
				{regexp.MustCompile(`\bvery unique\b`), "'Unique' is absolute; drop 'very'."},
				{regexp.MustCompile(`\bin order to\b`), "'To' alone is usually enough."},
				{regexp.MustCompile(`\bat this point in time\b`), "Prefer 'now'."},
			},
		},
		Turkish: {
			Spelling: []SpellingEntry{
				{"yanlız", "yalnız"},
				{"herkez", "herkes"},
				{"birşey", "bir şey"},
				{"yalnış", "yanlış"},
				{"supriz", "sürpriz"},
			},
			Grammar: []GrammarRule{
				{
					Pattern:     regexp.MustCompile(`\bbirçok şeyler\b`),
					Explanation: "'Birçok' sözcüğünden sonra çoğul eki kullanılmaz.",
					Template:    "birçok şey",
				},
				{
					Pattern:     regexp.MustCompile(`\bgeldimi\b`),
					Explanation: "Soru eki 'mi' ayrı yazılır.",
					Template:    "geldi mi",
				},
				{
					Pattern:     regexp.MustCompile(`\byapıcam\b`),
					Explanation: "Gelecek zaman eki yazıda düşmez: 'yapacağım'.",
					Template:    "yapacağım",
				},
			},
			Style: []StyleRule{
				{regexp.MustCompile(`\bkesinlikle emin\b`), "'Emin' yeterlidir; 'kesinlikle' gereksizdir."},
				{regexp.MustCompile(`\bgeri iade\b`), "'İade' zaten geri vermektir; 'geri' fazladır."},
			},
		},
		German: {
			Spelling: []SpellingEntry{
				{"standart", "standard"},
				{"seperat", "separat"},
				{"aggresiv", "aggressiv"},
				{"reperatur", "reparatur"},
				{"wiederspiegeln", "widerspiegeln"},
			},
			Grammar: []GrammarRule{
				{
					Pattern:     regexp.MustCompile(`\bgrößer wie\b`),
					Explanation: "Beim Komparativ steht 'als', nicht 'wie'.",
					Template:    "größer als",
				},
				{
					Pattern:     regexp.MustCompile(`\b[Ss]eid (\d+|wann)\b`),
					Explanation: "Zeitangaben verlangen 'seit', nicht 'seid'.",
					Template:    "seit $1",
				},
			},
			Style: []StyleRule{
				{regexp.MustCompile(`\bin keinster Weise\b`), "'Kein' ist nicht steigerbar: 'in keiner Weise'."},
				{regexp.MustCompile(`\bim Endeffekt\b`), "Kürzer: 'letztlich'."},
			},
		},
		French: {
			Spelling: []SpellingEntry{
				{"language", "langage"},
				{"dévelopement", "développement"},
				{"parmis", "parmi"},
				{"connection", "connexion"},
				{"appeller", "appeler"},
			},
			Grammar: []GrammarRule{
				{
					Pattern:     regexp.MustCompile(`\bmalgré que\b`),
					Explanation: "'Malgré' s'emploie avec un nom ; préférer 'bien que'.",
					Template:    "bien que",
				},
				{
					Pattern:     regexp.MustCompile(`\bsi j'aurais\b`),
					Explanation: "Après 'si', pas de conditionnel : 'si j'avais'.",
					Template:    "si j'avais",
				},
				{
					Pattern:     regexp.MustCompile(`\bpallier à\b`),
					Explanation: "'Pallier' est transitif direct, sans 'à'.",
					Template:    "pallier",
				},
			},
			Style: []StyleRule{
				{regexp.MustCompile(`\bau jour d'aujourd'hui\b`), "'Aujourd'hui' suffit."},
				{regexp.MustCompile(`\bvoire même\b`), "'Voire' inclut déjà 'même'."},
			},
		},
	}
}
