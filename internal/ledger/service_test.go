package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogie-dev/bogie/internal/model"
)

func entryOn(day int, desc string) model.Entry {
	return model.Entry{
		Date:        time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Amount:      decimal.RequireFromString("10.00"),
		Currency:    "GEL",
		Category:    model.CategoryFood,
	}
}

func TestService_AppendCreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	svc := NewService(path)

	require.NoError(t, svc.Append([]model.Entry{entryOn(1, "first")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header+"\n"))
	assert.Equal(t, 1, strings.Count(string(data), "first"))
}

func TestService_AppendIsAppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	svc := NewService(path)

	require.NoError(t, svc.Append([]model.Entry{entryOn(1, "first")}))
	require.NoError(t, svc.Append([]model.Entry{entryOn(2, "second")}))

	entries, err := svc.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Description)
	assert.Equal(t, "second", entries[1].Description)

	// Header written exactly once.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestService_AppendNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	svc := NewService(path)

	require.NoError(t, svc.Append(nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestService_ReadAllMissingFile(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "expenses.csv"))
	entries, err := svc.ReadAll()
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestService_ReadAllCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	require.NoError(t, os.WriteFile(path, []byte("not,a,valid\nledger"), 0o644))

	entries, err := NewService(path).ReadAll()
	require.NoError(t, err)
	assert.Nil(t, entries)
}
