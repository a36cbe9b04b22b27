package apimodels

type AnalysisRequest struct {
	// Title of the document being analyzed
	Title string `json:"title"`

	// Content is the raw document text
	Content string `json:"content"`
}

type SuggestRequest struct {
	// Word to look up suggestions for
	Word string `json:"word"`

	// Language hint (e.g. "English"); defaults to all trained vocabulary
	Language string `json:"language,omitempty"`
}

type EnhanceRequest struct {
	// Title of the document
	Title string `json:"title"`

	// Content is the text to rewrite
	Content string `json:"content"`

	// Optional parameters to control the rewrite
	Options EnhanceOptions `json:"options,omitempty"`
}

type EnhanceOptions struct {
	// Model specifies which LLM model to use (e.g. "gpt-4o-mini")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `json:"temperature,omitempty"`
}
