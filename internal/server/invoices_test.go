package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFilter(t *testing.T) {
	filter, err := listFilter(" INV-3337 ", "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, "INV-3337", filter.InvoiceNumber)
	require.NotNil(t, filter.CreatedFrom)
	require.NotNil(t, filter.CreatedTo)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *filter.CreatedFrom)
	// upper bound is inclusive for the whole day
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour-time.Nanosecond), *filter.CreatedTo)
}

func TestListFilterEmpty(t *testing.T) {
	filter, err := listFilter("", "", "")
	require.NoError(t, err)
	assert.Empty(t, filter.InvoiceNumber)
	assert.Nil(t, filter.CreatedFrom)
	assert.Nil(t, filter.CreatedTo)
}

func TestListFilterInvalidDate(t *testing.T) {
	_, err := listFilter("", "31/01/2026", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "31/01/2026")
}
