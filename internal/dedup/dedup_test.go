package dedup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	k := Key("01/02/2025", "Payment - Merchant: NIKORA")
	assert.Len(t, k, 14)

	// Deterministic for the same row, different for different rows.
	assert.Equal(t, k, Key("01/02/2025", "Payment - Merchant: NIKORA"))
	assert.NotEqual(t, k, Key("02/02/2025", "Payment - Merchant: NIKORA"))
	assert.NotEqual(t, k, Key("01/02/2025", "Payment - Merchant: SPAR"))
}

func TestSet(t *testing.T) {
	s := make(Set)
	assert.False(t, s.Has("abc"))
	s.Add("abc")
	assert.True(t, s.Has("abc"))
}

func TestStore_MissingFileGivesEmptySet(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".dedup_keys"))
	set, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dedup_keys")
	store := NewStore(path)

	set := make(Set)
	set.Add("bbb")
	set.Add("aaa")
	require.NoError(t, store.Save(set))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, set, loaded)

	// Keys are written sorted, one per line.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "aaa\nbbb\n", string(data))
}

func TestStore_IgnoresBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dedup_keys")
	require.NoError(t, os.WriteFile(path, []byte("aaa\n\n\nbbb\n"), 0o644))

	set, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Has("aaa"))
	assert.True(t, set.Has("bbb"))
}
