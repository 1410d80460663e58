package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luis-carvajal/invoice-extractor/gen/ent"
	entfile "github.com/luis-carvajal/invoice-extractor/gen/ent/invoicefile"
)

type InvoiceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error)
}

type invoiceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInvoiceFileRepository(entc *ent.Client, logger *slog.Logger) InvoiceFileRepository {
	return &invoiceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *invoiceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	return r.ent.InvoiceFile.Get(ctx, id)
}

func (r *invoiceFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error) {
	return r.ent.InvoiceFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
}

func (r *invoiceFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the content hash is already
// known; the bool reports whether it was a duplicate. Only a not-found
// lookup falls through to Create; any other failure is returned as is.
func (r *invoiceFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	existing, err := r.GetByHash(ctx, hash)
	if err == nil {
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up invoice file by hash", "filename", filename, "error", err)
		return nil, false, err
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
