package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogie-dev/bogie/internal/model"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "USD", cfg.Report.Currency)
	assert.NotEmpty(t, cfg.Report.Rates.AsOf)
	assert.Contains(t, cfg.Report.Rates.PerUSD, "GEL")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.KnownBeneficiaries = map[string]string{"dalakishvili ana": "Rent"}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("report: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestBeneficiaries(t *testing.T) {
	cfg := &Config{KnownBeneficiaries: map[string]string{
		"dalakishvili ana": "rent",    // canonicalized
		"someone else":     "Nonsense", // dropped
	}}

	b := cfg.Beneficiaries()
	require.Len(t, b, 1)
	assert.Equal(t, model.CategoryRent, b["dalakishvili ana"])
}
