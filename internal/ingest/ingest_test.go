package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-carvajal/invoice-extractor/gen/ent"
)

type memFiles struct {
	byHash map[string]*ent.InvoiceFile
}

func newMemFiles() *memFiles {
	return &memFiles{byHash: map[string]*ent.InvoiceFile{}}
}

func (m *memFiles) GetByID(context.Context, uuid.UUID) (*ent.InvoiceFile, error) {
	return nil, os.ErrNotExist
}

func (m *memFiles) GetByHash(_ context.Context, hash []byte) (*ent.InvoiceFile, error) {
	if row, ok := m.byHash[string(hash)]; ok {
		return row, nil
	}
	return nil, os.ErrNotExist
}

func (m *memFiles) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	row := &ent.InvoiceFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		ContentHash: hash,
		UploadedAt:  uploadedAt,
	}
	m.byHash[string(hash)] = row
	return row, nil
}

func (m *memFiles) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	if row, err := m.GetByHash(ctx, hash); err == nil {
		return row, true, nil
	}
	row, err := m.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".pdf"))
	assert.True(t, AllowedExt(".TXT"))
	assert.False(t, AllowedExt(".docx"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/data/.staging"))
	assert.False(t, IsHidden("/data/invoice.pdf"))
}

func TestIngestPathDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.txt")
	require.NoError(t, os.WriteFile(path, []byte("same content"), 0o644))

	ing := NewFSIngestor(newMemFiles(), nil)
	first, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, first.Deduplicated)
	assert.NotEmpty(t, first.HashHex)

	second, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.FileID, second.FileID)
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.csv"), []byte("c"), 0o644))
	hidden := filepath.Join(dir, ".staging")
	require.NoError(t, os.Mkdir(hidden, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hidden, "d.pdf"), []byte("d"), 0o644))

	ing := NewFSIngestor(newMemFiles(), nil)
	results, err := ing.IngestDirectory(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
