package apimodels

// AnalysisResult is the outcome of analyzing one document.
type AnalysisResult struct {
	// Title of the analyzed document
	DocumentTitle string `json:"documentTitle"`

	// Detected language ("English", "Turkish", "German", "French")
	Language string `json:"language"`

	// Dictionary misspellings found in the text
	SpellingErrors []SpellingError `json:"spellingErrors"`

	// Grammar rule matches found in the text
	GrammarErrors []GrammarError `json:"grammarErrors"`

	// Style phrase suggestions for the text
	StyleSuggestions []StyleSuggestion `json:"styleSuggestions"`
}

type SpellingError struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

type GrammarError struct {
	Original    string `json:"original"`
	Explanation string `json:"explanation"`
	Corrected   string `json:"corrected"`
}

type StyleSuggestion struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
}

// AnalyzeResponse wraps analysis results for the HTTP API.
type AnalyzeResponse struct {
	Results []AnalysisResult `json:"results"`
}

type SuggestResponse struct {
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions"`
}

type EnhanceResponse struct {
	// The rewritten text
	Result string `json:"result"`

	// Metadata about the rewrite
	Metadata EnhanceMetadata `json:"metadata"`
}

type EnhanceMetadata struct {
	// Time taken for the rewrite
	Duration string `json:"duration"`

	// Model used for the rewrite
	Model string `json:"model"`

	// Tokens used by the rewrite
	TokensUsed int64 `json:"tokensUsed"`
}

// HistoryRecord is one stored analysis, as returned by the history API.
type HistoryRecord struct {
	ID            string `json:"id"`
	DocumentTitle string `json:"documentTitle"`
	Language      string `json:"language"`
	SpellingCount int    `json:"spellingCount"`
	GrammarCount  int    `json:"grammarCount"`
	StyleCount    int    `json:"styleCount"`
	CreatedAt     string `json:"createdAt"`
}

// DocumentInfo describes one document available from a source.
type DocumentInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
