// Package pipeline wires the stages of a document parse: text extraction,
// input normalization, template dispatch, field extraction and record
// assembly. Persistence is optional and sits behind small interfaces so the
// engine stays usable without a database.
package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/luis-carvajal/invoice-extractor/constants"
	"github.com/luis-carvajal/invoice-extractor/internal/assemble"
	"github.com/luis-carvajal/invoice-extractor/internal/common"
	"github.com/luis-carvajal/invoice-extractor/internal/entity"
	"github.com/luis-carvajal/invoice-extractor/internal/extract"
	"github.com/luis-carvajal/invoice-extractor/internal/template"
	"github.com/luis-carvajal/invoice-extractor/internal/textutil"
)

// JobRecorder persists the parse-job lifecycle. Implemented by
// repository.ParseJobRepository; nil disables job tracking.
type JobRecorder interface {
	Start(ctx context.Context, sourcePath, format string) (uuid.UUID, error)
	MarkTextOK(ctx context.Context, jobID uuid.UUID) error
	FinishParsed(ctx context.Context, jobID uuid.UUID, templateName, rawText string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

// InvoiceSaver persists assembled invoices. Implemented by
// repository.InvoiceRepository; nil disables persistence.
type InvoiceSaver interface {
	SaveInvoice(ctx context.Context, jobID uuid.UUID, inv *entity.Invoice, templateName string) (uuid.UUID, error)
}

// DocumentResult is the outcome of one successfully parsed document.
type DocumentResult struct {
	Path      string
	JobID     uuid.UUID
	InvoiceID uuid.UUID
	Template  string
	Invoice   *entity.Invoice
}

type Pipeline struct {
	Extractor extract.TextExtractor
	Registry  *template.Registry
	Jobs      JobRecorder
	Invoices  InvoiceSaver
	Log       *slog.Logger
}

func New(tx extract.TextExtractor, reg *template.Registry, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Extractor: tx, Registry: reg, Log: log}
}

// ParseText runs the pure engine over already-extracted text: normalize,
// select a template, extract fragments, assemble the record. It holds no
// state and is safe to call from any number of goroutines.
func (p *Pipeline) ParseText(text string) (*entity.Invoice, string, error) {
	normalized := textutil.NormalizeText(text)
	tpl, err := p.Registry.Select(normalized)
	if err != nil {
		return nil, "", err
	}
	frags, err := tpl.Extract(normalized)
	if err != nil {
		return nil, tpl.Name(), fmt.Errorf("template %s: %w", tpl.Name(), err)
	}
	return assemble.Record(frags), tpl.Name(), nil
}

// ParseFile runs the full flow for one file on disk: extract text, parse,
// and record job state and the invoice when stores are configured.
func (p *Pipeline) ParseFile(ctx context.Context, path string) (*DocumentResult, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return nil, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}
	ctx = common.WithDocumentID(ctx, path)

	var jobID uuid.UUID
	if p.Jobs != nil {
		var err error
		jobID, err = p.Jobs.Start(ctx, path, format)
		if err != nil {
			return nil, fmt.Errorf("start job: %w", err)
		}
	}

	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		p.failJob(ctx, jobID, err)
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	if p.Jobs != nil {
		if err := p.Jobs.MarkTextOK(ctx, jobID); err != nil {
			return nil, fmt.Errorf("update job: %w", err)
		}
	}

	inv, tplName, err := p.ParseText(res.Text)
	if err != nil {
		p.failJob(ctx, jobID, err)
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	out := &DocumentResult{Path: path, JobID: jobID, Template: tplName, Invoice: inv}

	if p.Jobs != nil {
		if err := p.Jobs.FinishParsed(ctx, jobID, tplName, inv.RawText); err != nil {
			return nil, fmt.Errorf("finish job: %w", err)
		}
	}
	if p.Invoices != nil {
		id, err := p.Invoices.SaveInvoice(ctx, jobID, inv, tplName)
		if err != nil {
			return nil, fmt.Errorf("save invoice: %w", err)
		}
		out.InvoiceID = id
	}

	logArgs := []any{
		"path", path,
		"template", tplName,
		"invoice_number", inv.InvoiceNumber,
		"lines", len(inv.Lines),
	}
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		logArgs = append(logArgs, "request_id", rid)
	}
	p.Log.Info("document parsed", logArgs...)
	return out, nil
}

func (p *Pipeline) failJob(ctx context.Context, jobID uuid.UUID, cause error) {
	if p.Jobs == nil || jobID == uuid.Nil {
		return
	}
	if err := p.Jobs.FinishFailure(ctx, jobID, cause.Error()); err != nil {
		p.Log.Error("job failure not recorded", "job_id", jobID, "error", err)
	}
}

// ParseDir processes every supported file under dir in lexical order. A
// fatal failure on one document is logged and skipped; it never aborts the
// batch.
func (p *Pipeline) ParseDir(ctx context.Context, dir string) ([]*DocumentResult, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*DocumentResult, 0, len(paths))
	for _, path := range paths {
		res, err := p.ParseFile(ctx, path)
		if err != nil {
			p.Log.Warn("document skipped", "path", path, "error", err)
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

// ListDocuments walks dir recursively and returns supported files sorted by
// path, so batch output order is stable.
func ListDocuments(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// FormatForLog renders a short single-line summary used by the batch CLI.
func (r *DocumentResult) FormatForLog() string {
	var b strings.Builder
	b.WriteString(r.Invoice.InvoiceNumber)
	if r.Invoice.Totals != nil {
		b.WriteString(" ")
		b.WriteString(r.Invoice.Totals.Total.StringFixed(2))
		b.WriteString(" ")
		b.WriteString(r.Invoice.Totals.CurrencyCode)
	}
	return b.String()
}
