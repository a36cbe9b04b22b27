package llm

import "context"

// Provider produces AI rewrite suggestions for a document.
type Provider interface {
	// Rewrite takes document text and returns an improved version with
	// brief notes on what changed.
	Rewrite(ctx context.Context, title, content string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}
