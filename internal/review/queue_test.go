package review

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogie-dev/bogie/internal/model"
)

func queuedItem(key, desc string) model.ReviewItem {
	return model.ReviewItem{
		DedupKey:    key,
		Date:        time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Amount:      decimal.RequireFromString("200.00"),
		Currency:    "GEL",
		Flag:        model.FlagCash,
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "flagged.json"))

	items := []model.ReviewItem{
		queuedItem("k1", "Cash (ATM: Vake Park)"),
		{
			DedupKey:    "k2",
			Date:        time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC),
			Description: "SOME VENDOR",
			Amount:      decimal.RequireFromString("42.50"),
			Currency:    "GEL",
			Flag:        model.FlagUnknown,
			Merchant:    "SOME VENDOR",
		},
	}
	require.NoError(t, store.Save(items))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, len(items))
	for i := range items {
		assert.Equal(t, items[i].DedupKey, loaded[i].DedupKey)
		assert.Equal(t, items[i].Date, loaded[i].Date)
		assert.Equal(t, items[i].Description, loaded[i].Description)
		assert.Equal(t, items[i].Currency, loaded[i].Currency)
		assert.Equal(t, items[i].Flag, loaded[i].Flag)
		assert.Equal(t, items[i].Merchant, loaded[i].Merchant)
		assert.True(t, items[i].Amount.Equal(loaded[i].Amount), "amount %d", i)
	}
}

func TestStore_MissingFileGivesEmptyQueue(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "flagged.json"))
	items, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flagged.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	items, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestMerge_SkipsAlreadyQueuedKeys(t *testing.T) {
	queue := []model.ReviewItem{queuedItem("k1", "existing")}

	flagged := []model.Transaction{
		{DedupKey: "k1", Flag: model.FlagCash, Description: "same row again"},
		{DedupKey: "k2", Flag: model.FlagUnknown, Description: "new row"},
		{DedupKey: "k2", Flag: model.FlagUnknown, Description: "same new row twice"},
	}

	merged := Merge(queue, flagged)
	require.Len(t, merged, 2)
	assert.Equal(t, "existing", merged[0].Description)
	assert.Equal(t, "new row", merged[1].Description)
}
