package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajack/xlmortgage"
)

func TestParse_AllFields(t *testing.T) {
	cfg, err := Parse([]byte(`
loan_amount: 450000
annual_rate: 0.0575
term_years: 15
start_date: 2026-03-01
output: out.xlsx
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.LoanAmount)
	assert.Equal(t, 450000.0, *cfg.LoanAmount)
	require.NotNil(t, cfg.AnnualRate)
	assert.Equal(t, 0.0575, *cfg.AnnualRate)
	require.NotNil(t, cfg.TermYears)
	assert.Equal(t, 15, *cfg.TermYears)
	assert.Equal(t, "2026-03-01", cfg.StartDate)
	assert.Equal(t, "out.xlsx", cfg.Output)

	opts, err := cfg.Options()
	require.NoError(t, err)
	g := xlmortgage.NewGenerator(opts...)
	in := g.Inputs()
	assert.Equal(t, 450000.0, in.Amount)
	assert.Equal(t, 0.0575, in.AnnualRate)
	assert.Equal(t, 15, in.TermYears)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), in.StartDate)
	assert.Equal(t, "out.xlsx", g.OutputPath())
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("term_years: 20\n"))
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	g := xlmortgage.NewGenerator(opts...)

	def := xlmortgage.DefaultInputs()
	assert.Equal(t, def.Amount, g.Inputs().Amount)
	assert.Equal(t, def.AnnualRate, g.Inputs().AnnualRate)
	assert.Equal(t, 20, g.Inputs().TermYears)
	assert.Equal(t, xlmortgage.DefaultFileName, g.OutputPath())
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("loan_amount: [1, 2"))
	assert.Error(t, err)
}

func TestOptions_BadStartDate(t *testing.T) {
	cfg := Config{StartDate: "01/02/2025"}
	_, err := cfg.Options()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loan_amount: 123456.78\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.LoanAmount)
	assert.Equal(t, 123456.78, *cfg.LoanAmount)
	assert.Nil(t, cfg.TermYears)
}
