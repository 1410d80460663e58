package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/luis-carvajal/invoice-extractor/constants"
	"github.com/luis-carvajal/invoice-extractor/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	MaxPages  int    // 0 = no limit
}

// Extractor reads the embedded text layer of a PDF via pdftotext, or the
// raw bytes of a .txt file. Scanned documents without a text layer are out
// of scope and surface as an upstream extraction failure.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))

	var res TextExtractionResult
	var err error
	switch ext {
	case "pdf":
		res, err = e.pdfToText(ctx, path)
	case "txt":
		res, err = e.plainText(path)
	default:
		return TextExtractionResult{}, fmt.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return res, err
	}

	res.Duration = time.Since(start)
	if strings.TrimSpace(res.Text) == "" {
		return res, common.NewAppError(common.CodeUpstreamExtraction,
			fmt.Sprintf("no text layer in %s", filepath.Base(path)),
			common.ErrUpstreamExtraction)
	}

	e.logger.Debug("text extracted",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (TextExtractionResult, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	args := []string{"-layout", "-enc", "UTF-8", "-eol", "unix"}
	if e.cfg.MaxPages > 0 {
		args = append(args, "-l", fmt.Sprintf("%d", e.cfg.MaxPages))
	}
	args = append(args, path, "-")

	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, args...)
	if err != nil {
		return TextExtractionResult{Warnings: []string{string(errb)}},
			fmt.Errorf("pdftotext: %w", err)
	}
	text := string(out)
	// a form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return TextExtractionResult{Text: text, Pages: pages, Method: "pdf-text"}, nil
}

func (e *Extractor) plainText(path string) (TextExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read text file: %w", err)
	}
	return TextExtractionResult{Text: string(data), Pages: 1, Method: "plain-text"}, nil
}
