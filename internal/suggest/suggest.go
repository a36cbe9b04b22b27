package suggest

import (
	"bufio"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sajari/fuzzy"
)

//go:embed data/words.txt
var embeddedFS embed.FS

// Service offers fuzzy word suggestions. It is a convenience for the UI
// and deliberately separate from the analyzer, whose spelling check is a
// plain dictionary lookup with no edit-distance semantics.
type Service struct {
	model *fuzzy.Model
}

// NewService trains a fuzzy model from the embedded word list plus any
// extra vocabulary (typically the pattern tables' correction words).
func NewService(extraVocab []string) (*Service, error) {
	model := fuzzy.NewModel()
	model.SetDepth(2)
	model.SetThreshold(1)

	file, err := embeddedFS.Open("data/words.txt")
	if err != nil {
		return nil, fmt.Errorf("open embedded word list: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			model.TrainWord(strings.ToLower(word))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read embedded word list: %w", err)
	}

	for _, word := range extraVocab {
		word = strings.TrimSpace(strings.ToLower(word))
		if word != "" {
			model.TrainWord(word)
		}
	}

	return &Service{model: model}, nil
}

// Suggest returns up to max candidate corrections for word, closest
// edit distance first, ties alphabetical. The word itself is excluded.
func (s *Service) Suggest(word string, max int) []string {
	w := strings.TrimSpace(strings.ToLower(word))
	if w == "" || max <= 0 {
		return []string{}
	}

	seen := map[string]struct{}{w: {}}
	candidates := []string{}
	for _, c := range s.model.Suggestions(w, false) {
		c = strings.ToLower(c)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		di := levenshtein.ComputeDistance(w, candidates[i])
		dj := levenshtein.ComputeDistance(w, candidates[j])
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates
}
