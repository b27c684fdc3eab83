package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text. The pipeline consumes plain page
// text only; no layout metadata crosses this boundary.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string // pages concatenated, newline between pages
	Pages    int
	Method   string // "pdf-text" | "plain-text"
	Duration time.Duration
	Warnings []string
}
