package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("12 Elm Street")
	cfg.Parameters.SquareFootage = 1250
	cfg.Parameters.CarryIncomePerUnit = 1.5
	cfg.Parameters.CarryPayFrequency = 1
	cfg.Capabilities.WithCarryIncome = true
	cfg.Carry.Multiplier = 1250

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Property, got.Property)
	assert.Equal(t, cfg.Parameters, got.Parameters)
	assert.Equal(t, cfg.Capabilities, got.Capabilities)
	assert.InDelta(t, 1250, got.Carry.Multiplier, 0.001)
	assert.Equal(t, cfg.Git, got.Git)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My House")

	assert.Equal(t, "My House", cfg.Property.Name)
	assert.Equal(t, "USD", cfg.Property.Currency)
	assert.InDelta(t, 100000, cfg.Parameters.ListValue, 0.001)
	assert.InDelta(t, -0.05, cfg.Parameters.InterestRate, 1e-9)
	assert.InDelta(t, 0.016, cfg.Parameters.DiscountRate, 1e-9)
	assert.Equal(t, 1, cfg.Parameters.TaxPayFrequency)
	assert.Equal(t, 10, cfg.Parameters.TenorYears)
	assert.InDelta(t, 0.5, cfg.Parameters.DownPercent, 1e-9)
	assert.True(t, cfg.Capabilities.WithMortgage)
	assert.False(t, cfg.Capabilities.WithCarryIncome)
	assert.False(t, cfg.Git.AutoCommit)
}

func TestModelConversion(t *testing.T) {
	cfg := Default("x")
	p := cfg.ModelParameters()
	assert.InDelta(t, 50000, p.LoanAmount(), 1e-9)
	assert.Equal(t, cfg.Parameters.TenorYears, p.TenorYears)
	assert.Equal(t, cfg.Parameters.DownPayFrequency, p.DownPayFrequency)

	caps := cfg.ModelCapabilities()
	assert.True(t, caps.WithMortgage)
	assert.False(t, caps.WithCarryIncome)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("parameters: [not, a, map"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test House")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test House")
	assert.Contains(t, contents, "tax_pay_freq: 1")
	assert.Contains(t, contents, "down_percent: 0.5")
	assert.Contains(t, contents, "with_mortgage: true")
	assert.NotContains(t, contents, "square_footage")
}
