package repository

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-carvajal/invoice-extractor/gen/ent"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	client, err := OpenSQLite(context.Background(), dsn, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestUpsertByHashCreatesThenDeduplicates(t *testing.T) {
	client := openTestClient(t)
	repo := NewInvoiceFileRepository(client, testLogger())
	ctx := context.Background()

	hash := sha256.Sum256([]byte("invoice body"))
	now := time.Now().UTC()

	first, dup, err := repo.UpsertByHash(ctx, "/in/a.pdf", "a.pdf", "pdf", 42, hash[:], now)
	require.NoError(t, err)
	assert.False(t, dup)

	// Same content under a different path must resolve to the first row.
	second, dup, err := repo.UpsertByHash(ctx, "/in/copy.pdf", "copy.pdf", "pdf", 42, hash[:], now)
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpsertByHashPropagatesLookupErrors(t *testing.T) {
	client := openTestClient(t)
	repo := NewInvoiceFileRepository(client, testLogger())
	ctx := context.Background()

	require.NoError(t, client.Close())

	// A failed lookup is not a missing row; it must surface, not fall
	// through to Create.
	hash := sha256.Sum256([]byte("unreachable"))
	row, dup, err := repo.UpsertByHash(ctx, "/in/b.pdf", "b.pdf", "pdf", 7, hash[:], time.Now().UTC())
	require.Error(t, err)
	assert.False(t, dup)
	assert.Nil(t, row)
}
