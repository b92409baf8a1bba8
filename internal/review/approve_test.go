package review

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogie-dev/bogie/internal/model"
)

func threeItems() []model.ReviewItem {
	date := time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC)
	return []model.ReviewItem{
		{DedupKey: "k1", Date: date, Description: "SOME VENDOR", Amount: decimal.RequireFromString("42.50"), Currency: "GEL", Flag: model.FlagUnknown, Merchant: "SOME VENDOR"},
		{DedupKey: "k2", Date: date, Description: "Cash (ATM: Vake Park)", Amount: decimal.RequireFromString("200.00"), Currency: "GEL", Flag: model.FlagCash},
		{DedupKey: "k3", Date: date, Description: "→ John Smith", Amount: decimal.RequireFromString("100.00"), Currency: "USD", Flag: model.FlagTransfer},
	}
}

func TestApply_PartialFailure(t *testing.T) {
	result := Apply(threeItems(), []string{"1=Food", "5=Transport", "2=skip"})

	require.Len(t, result.Decisions, 3)
	assert.NoError(t, result.Decisions[0].Err)
	assert.ErrorContains(t, result.Decisions[1].Err, "out of range")
	assert.NoError(t, result.Decisions[2].Err)
	assert.True(t, result.Decisions[2].Skip)

	// Item 1 approved and learned, item 2 skipped without a ledger write,
	// item 3 untouched.
	require.Len(t, result.Approved, 1)
	assert.Equal(t, model.CategoryFood, result.Approved[0].Category)
	assert.Equal(t, model.CategoryFood, result.Learned["some vendor"])

	require.Len(t, result.Remaining, 1)
	assert.Equal(t, "k3", result.Remaining[0].DedupKey)
}

func TestApply_DrainingTheQueue(t *testing.T) {
	result := Apply(threeItems(), []string{"1=Food", "2=Cash", "3=Rent"})

	assert.Empty(t, result.Remaining)
	assert.Len(t, result.Approved, 3)

	// Only the item with a merchant feeds the learned map.
	assert.Len(t, result.Learned, 1)
}

func TestApply_CategoryMatchingIsCaseInsensitive(t *testing.T) {
	result := Apply(threeItems(), []string{"1=fOOd"})

	require.Len(t, result.Approved, 1)
	assert.Equal(t, model.CategoryFood, result.Approved[0].Category)
}

func TestApply_UnknownCategory(t *testing.T) {
	result := Apply(threeItems(), []string{"1=Groceries"})

	require.Len(t, result.Decisions, 1)
	assert.ErrorContains(t, result.Decisions[0].Err, "unknown category")
	assert.Empty(t, result.Approved)
	assert.Len(t, result.Remaining, 3)
}

func TestApply_MalformedTokens(t *testing.T) {
	result := Apply(threeItems(), []string{"Food", "x=Food", "0=Food"})

	for _, d := range result.Decisions {
		assert.Error(t, d.Err)
	}
	assert.Empty(t, result.Approved)
	assert.Len(t, result.Remaining, 3)
}

func TestApply_SkipDoesNotLearn(t *testing.T) {
	result := Apply(threeItems(), []string{"1=skip"})

	assert.Empty(t, result.Approved)
	assert.Empty(t, result.Learned)
	assert.Len(t, result.Remaining, 2)
}
