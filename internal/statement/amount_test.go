package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEuropeanAmount(t *testing.T) {
	d, err := ParseEuropeanAmount("1 234,50")
	require.NoError(t, err)
	assert.Equal(t, "1234.50", d.StringFixed(2))
}

func TestParseEuropeanAmount_Empty(t *testing.T) {
	d, err := ParseEuropeanAmount("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseEuropeanAmount("   ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestParseEuropeanAmount_NonBreakingSpace(t *testing.T) {
	d, err := ParseEuropeanAmount("1\u00a0234,5")
	require.NoError(t, err)
	assert.Equal(t, "1234.50", d.StringFixed(2))
}

func TestParseEuropeanAmount_Negative(t *testing.T) {
	d, err := ParseEuropeanAmount("-24,12")
	require.NoError(t, err)
	assert.Equal(t, "-24.12", d.StringFixed(2))
	assert.True(t, d.IsNegative())
}

func TestParseEuropeanAmount_Garbage(t *testing.T) {
	_, err := ParseEuropeanAmount("N/A")
	assert.Error(t, err)
}
