package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-carvajal/invoice-extractor/internal/common"
	"github.com/luis-carvajal/invoice-extractor/internal/entity"
	"github.com/luis-carvajal/invoice-extractor/internal/extract"
	"github.com/luis-carvajal/invoice-extractor/internal/template"
)

const sampleText = `Sliced Invoices
From:
DEMO - Sliced Invoices
Order Number 12345
admin@slicedinvoices.com
To:
Test Business

Invoice Number INV-3384

Hrs/Qty Service Rate/Price Adjust Sub Total

Web Design
1.00 $85.00 0.00% $85.00
This is a sample description.

Sub Total $85.00
Tax $8.50
Total $93.50
`

type fileExtractor struct{}

func (fileExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.TextExtractionResult{}, err
	}
	return extract.TextExtractionResult{Text: string(data), Pages: 1, Method: "test"}, nil
}

type failingExtractor struct{}

func (failingExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{}, errors.New("no text layer")
}

type memJobs struct {
	mu       sync.Mutex
	started  []string
	textOK   []uuid.UUID
	parsed   []uuid.UUID
	failures []string
}

func (m *memJobs) Start(_ context.Context, sourcePath, _ string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = append(m.started, sourcePath)
	return uuid.New(), nil
}

func (m *memJobs) MarkTextOK(_ context.Context, jobID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textOK = append(m.textOK, jobID)
	return nil
}

func (m *memJobs) FinishParsed(_ context.Context, jobID uuid.UUID, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parsed = append(m.parsed, jobID)
	return nil
}

func (m *memJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, message)
	return nil
}

type memInvoices struct {
	mu    sync.Mutex
	saved []*entity.Invoice
}

func (m *memInvoices) SaveInvoice(_ context.Context, _ uuid.UUID, inv *entity.Invoice, _ string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, inv)
	return uuid.New(), nil
}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(fileExtractor{}, template.NewRegistry("USD"), log)
}

func writeDoc(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestParseText(t *testing.T) {
	p := newTestPipeline(t)

	inv, tplName, err := p.ParseText(sampleText)
	require.NoError(t, err)
	assert.Equal(t, "generic", tplName)
	assert.Equal(t, "INV-3384", inv.InvoiceNumber)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "Web Design – This is a sample description.", inv.Lines[0].Description)
	require.NotNil(t, inv.Totals)
	// One $85.00 line; the summed lines take precedence over the reported
	// $93.50 and the drift lands in the extra bag.
	assert.Equal(t, "85", inv.Totals.Total.String())
	flag, ok := inv.Extra.Get("total_mismatch_flag")
	require.True(t, ok)
	assert.True(t, flag.Bool())
}

func TestParseTextNoTemplate(t *testing.T) {
	p := newTestPipeline(t)

	_, _, err := p.ParseText("completely unrelated content")
	assert.ErrorIs(t, err, common.ErrTemplateNotFound)
}

func TestParseFile(t *testing.T) {
	p := newTestPipeline(t)
	jobs := &memJobs{}
	invoices := &memInvoices{}
	p.Jobs = jobs
	p.Invoices = invoices

	path := writeDoc(t, t.TempDir(), "inv.txt", sampleText)
	res, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, res.Path)
	assert.Equal(t, "generic", res.Template)
	assert.NotEqual(t, uuid.Nil, res.InvoiceID)
	assert.Len(t, jobs.textOK, 1)
	assert.Len(t, jobs.parsed, 1)
	assert.Len(t, invoices.saved, 1)
	assert.Empty(t, jobs.failures)
}

func TestParseFileUnsupportedFormat(t *testing.T) {
	p := newTestPipeline(t)

	_, err := p.ParseFile(context.Background(), "invoice.docx")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestParseFileExtractionFailureRecorded(t *testing.T) {
	p := newTestPipeline(t)
	p.Extractor = failingExtractor{}
	jobs := &memJobs{}
	p.Jobs = jobs

	path := writeDoc(t, t.TempDir(), "inv.txt", sampleText)
	_, err := p.ParseFile(context.Background(), path)
	require.Error(t, err)
	require.Len(t, jobs.failures, 1)
	assert.Contains(t, jobs.failures[0], "no text layer")
	assert.Empty(t, jobs.textOK)
}

func TestParseDirSkipsBadDocuments(t *testing.T) {
	p := newTestPipeline(t)
	dir := t.TempDir()
	writeDoc(t, dir, "a.txt", sampleText)
	writeDoc(t, dir, "b.txt", "not an invoice at all")
	writeDoc(t, dir, "c.txt", sampleText)
	writeDoc(t, dir, "notes.md", "ignored")

	results, err := p.ParseDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), results[0].Path)
	assert.Equal(t, filepath.Join(dir, "c.txt"), results[1].Path)
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeDoc(t, dir, "z.txt", "x")
	writeDoc(t, sub, "a.pdf", "x")
	writeDoc(t, dir, "skip.csv", "x")

	paths, err := ListDocuments(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(sub, "a.pdf"), paths[0])
	assert.Equal(t, filepath.Join(dir, "z.txt"), paths[1])
}

func TestQueueProcessesAllJobs(t *testing.T) {
	p := newTestPipeline(t)
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"one.txt", "two.txt", "three.txt"} {
		paths = append(paths, writeDoc(t, dir, name, sampleText))
	}
	writeDoc(t, dir, "bad.txt", "garbage")

	q := NewQueue(p, nil, WithWorkers(2), WithQueueSize(8))
	ctx := context.Background()
	q.Start(ctx)
	for _, path := range append(paths, filepath.Join(dir, "bad.txt")) {
		require.True(t, q.Enqueue(ctx, path))
	}
	q.Shutdown()

	assert.Len(t, q.Results(), 3)
	require.Len(t, q.Failed(), 1)
	assert.Equal(t, filepath.Join(dir, "bad.txt"), q.Failed()[0])
}

func TestQueueEnqueueAfterCancel(t *testing.T) {
	p := newTestPipeline(t)
	q := NewQueue(p, nil, WithWorkers(1), WithQueueSize(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A context that is already done is rejected before the send, even
	// while the buffer has room.
	assert.False(t, q.Enqueue(ctx, "first"))
	assert.False(t, q.Enqueue(ctx, "second"))
}

func TestQueueEnqueueAfterShutdown(t *testing.T) {
	p := newTestPipeline(t)
	q := NewQueue(p, nil, WithWorkers(1), WithQueueSize(1))
	ctx := context.Background()
	q.Start(ctx)
	q.Shutdown()

	assert.False(t, q.Enqueue(ctx, "late"))
}

func TestQueueShutdownDuringEnqueue(t *testing.T) {
	p := newTestPipeline(t)
	dir := t.TempDir()
	path := writeDoc(t, dir, "inv.txt", sampleText)

	// A tiny buffer keeps the producer blocked in the send while Shutdown
	// closes the queue underneath it. The send must either complete or be
	// refused; it must never hit a closed channel.
	q := NewQueue(p, nil, WithWorkers(2), WithQueueSize(1))
	ctx := context.Background()
	q.Start(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 64; i++ {
			if !q.Enqueue(ctx, path) {
				return
			}
		}
	}()

	time.Sleep(10 * time.Millisecond)
	q.Shutdown()
	<-done

	assert.False(t, q.Enqueue(ctx, path))
	assert.Empty(t, q.Failed())
}
