package extract

import (
	"context"
	"time"
)

// TextExtractor is stage 1: file -> plain text. PDF byte-stream decoding is
// an external concern; implementations shell out or delegate, they do not
// parse PDF themselves.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "plain-text"
	Duration time.Duration
	Warnings []string
}
