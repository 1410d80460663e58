// Package ingest registers source documents: it hashes file content for
// deduplication, records them, and discovers new arrivals on disk.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luis-carvajal/invoice-extractor/constants"
	"github.com/luis-carvajal/invoice-extractor/internal/repository"
)

// IngestionResult reports one registered file.
type IngestionResult struct {
	SourcePath   string
	FileID       uuid.UUID
	Deduplicated bool
	HashHex      string
	FileExt      string
	UploadedAt   time.Time
}

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	files repository.InvoiceFileRepository
	log   *slog.Logger
}

func NewFSIngestor(files repository.InvoiceFileRepository, log *slog.Logger) *FSIngestor {
	if log == nil {
		log = slog.Default()
	}
	return &FSIngestor{files: files, log: log}
}

// AllowedExt checks if a file extension is in the allowed set.
func AllowedExt(ext string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(ext)]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// IngestPath registers one file. Re-ingesting identical content returns the
// existing row with Deduplicated set.
func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}
	ext := constants.NormalizeExt(filepath.Ext(abs))
	if !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			i.log.Warn("close file failed", "path", abs, "error", err)
		}
	}()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return out, fmt.Errorf("hash %s: %w", abs, err)
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.files.UpsertByHash(ctx, abs, filepath.Base(abs), ext, int(size), sum, now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID,
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		UploadedAt:   row.UploadedAt,
	}
	i.log.Info("file ingested", "path", abs, "file_id", row.ID, "deduplicated", dedup)
	return out, nil
}

// IngestDirectory walks root and registers every supported file, skipping
// hidden entries. Per-file failures are logged and counted, not fatal.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string) ([]IngestionResult, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("empty root")
	}

	var results []IngestionResult
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		res, err := i.IngestPath(ctx, path)
		if err != nil {
			i.log.Warn("file skipped", "path", path, "error", err)
			return nil
		}
		results = append(results, res)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return results, nil
}
