package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/javajack/xlmortgage"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_NoArgsWritesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "Successfully created: "+xlmortgage.DefaultFileName+"\n", out)

	_, err = os.Stat(filepath.Join(dir, xlmortgage.DefaultFileName))
	require.NoError(t, err)
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "loan.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("loan_amount: 100000\nterm_years: 10\n"), 0o644))
	outPath := filepath.Join(dir, "loan.xlsx")

	out, _, err := execute(t, "--config", cfgPath, "--term", "15", "--start", "2026-06-01", "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, outPath)

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	amount, err := f.GetCellValue(xlmortgage.CalculatorSheet, "C6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "100000", amount)

	term, err := f.GetCellValue(xlmortgage.CalculatorSheet, "C8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "15", term)

	start, err := f.GetCellValue(xlmortgage.CalculatorSheet, "C9")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", start)
}

func TestRoot_BadStartDate(t *testing.T) {
	_, stderr, err := execute(t, "--start", "June 1st", "-o", filepath.Join(t.TempDir(), "x.xlsx"))
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.True(t, strings.HasPrefix(stderr, `Error: --start "June 1st"`), stderr)
	assert.NotContains(t, stderr, "level=")
}

func TestRoot_MissingConfigIsPlainError(t *testing.T) {
	_, stderr, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "-o", filepath.Join(t.TempDir(), "x.xlsx"))
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
	assert.Contains(t, stderr, "nope.yaml")
}

func TestRoot_UnwritableOutput(t *testing.T) {
	_, stderr, err := execute(t, "-o", filepath.Join(t.TempDir(), "missing", "x.xlsx"))
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, stderr, "generation failed")
}

func TestRoot_VerboseLogsPhases(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "-o", filepath.Join(t.TempDir(), "x.xlsx"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "sheet built")
	assert.Contains(t, stderr, "workbook saved")
}

func TestValidate_GeneratedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.xlsx")
	_, err := xlmortgage.Generate(path)
	require.NoError(t, err)

	out, _, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, path+": OK\n", out)
}

func TestValidate_BrokenChainExits1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.xlsx")
	_, err := xlmortgage.Generate(path, xlmortgage.WithPreWrite(func(f *excelize.File) error {
		return f.SetCellFormula(xlmortgage.CalculatorSheet, "E40", "1000")
	}))
	require.NoError(t, err)

	out, _, err := execute(t, "validate", path)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, out, "[ERROR] 'Mortgage Calculator'!E40")
}

func TestValidate_MissingFile(t *testing.T) {
	_, _, err := execute(t, "validate", filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestDescribe_GeneratedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.xlsx")
	_, err := xlmortgage.Generate(path)
	require.NoError(t, err)

	out, _, err := execute(t, "describe", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[1] Mortgage Calculator")
	assert.Contains(t, out, "[2] Yearly Summary")
	assert.Contains(t, out, "[3] Instructions")
	assert.Contains(t, out, "functions: EDATE, IF, MAX, PMT")
}
