package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-carvajal/invoice-extractor/internal/common"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func TestExtractPDF(t *testing.T) {
	stub := &stubRunner{stdout: []byte("page one\fpage two")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "/docs/invoice.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "page one\fpage two", res.Text)
	assert.Equal(t, "pdftotext", stub.gotName)
	assert.Contains(t, stub.gotArgs, "-layout")
}

func TestExtractEmptyTextLayerIsFatal(t *testing.T) {
	stub := &stubRunner{stdout: []byte("  \n  ")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	_, err := e.Extract(context.Background(), "/docs/scanned.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstreamExtraction))
}

func TestExtractCommandFailure(t *testing.T) {
	stub := &stubRunner{stderr: []byte("boom"), err: errors.New("exit 1")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "/docs/invoice.pdf")
	require.Error(t, err)
	assert.Contains(t, res.Warnings, "boom")
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.txt")
	require.NoError(t, os.WriteFile(path, []byte("Invoice Number INV-1"), 0o644))

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "plain-text", res.Method)
	assert.Equal(t, "Invoice Number INV-1", res.Text)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "/docs/invoice.png")
	assert.Error(t, err)
}
