package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory_Canonicalizes(t *testing.T) {
	for _, input := range []string{"Food", "food", "FOOD", "fOoD"} {
		category, ok := ParseCategory(input)
		require.True(t, ok, input)
		assert.Equal(t, CategoryFood, category)
	}
}

func TestParseCategory_RejectsUnknown(t *testing.T) {
	for _, input := range []string{"Groceries", "", "Foo", "Food "} {
		_, ok := ParseCategory(input)
		assert.False(t, ok, input)
	}
}

func TestCategoryList(t *testing.T) {
	list := CategoryList()
	assert.Contains(t, list, "Food, Transport")
	assert.Contains(t, list, "Rent, Cash")

	for _, c := range Categories() {
		assert.Contains(t, list, string(c))
	}
}
