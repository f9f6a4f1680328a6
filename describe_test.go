package xlmortgage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDescribe_GeneratedWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.xlsx")
	_, err := Generate(path)
	require.NoError(t, err)

	output, err := Describe(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "Workbook: "+path+"\n"))
	assert.Contains(t, output, "[1] Mortgage Calculator")
	assert.Contains(t, output, "[2] Yearly Summary")
	assert.Contains(t, output, "[3] Instructions")

	assert.Contains(t, output, `merged B2:E2 "MORTGAGE PAYMENT CALCULATOR"`)
	assert.Contains(t, output, `merged B20:H20 "AMORTIZATION SCHEDULE"`)
	assert.Contains(t, output, `merged B2:F2 "YEARLY PAYMENT SUMMARY"`)

	assert.Contains(t, output, "C6:C9 (1x4) literals=4 formulas=0")
	assert.Contains(t, output, "C13:C17 (1x5) literals=0 formulas=5")
	assert.Contains(t, output, "B23:H382 (7x360) literals=360 formulas=2160")
	assert.Contains(t, output, "B5:F34 (5x30) literals=0 formulas=150")
	assert.Contains(t, output, "B1:B24 (1x24) literals=18 formulas=0")

	assert.Contains(t, output, "functions: EDATE, IF, MAX, PMT")
	assert.Contains(t, output, "functions: IF, SUMPRODUCT")
}

func TestDescribe_SheetOrderInOutput(t *testing.T) {
	f := openGenerated(t)
	output, err := DescribeFile(f)
	require.NoError(t, err)

	calc := strings.Index(output, "[1] Mortgage Calculator")
	summary := strings.Index(output, "[2] Yearly Summary")
	instructions := strings.Index(output, "[3] Instructions")
	assert.True(t, calc >= 0 && calc < summary && summary < instructions)
}

func TestDescribe_CountsTamperedCells(t *testing.T) {
	f := openGenerated(t, WithPreWrite(func(f *excelize.File) error {
		return f.SetCellFormula(CalculatorSheet, "G23", "100")
	}))
	output, err := DescribeFile(f)
	require.NoError(t, err)
	assert.Contains(t, output, "B23:H382 (7x360) literals=359 formulas=2161")
}

func TestDescribe_UnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "x"))

	output, err := DescribeFile(f)
	require.NoError(t, err)
	assert.Contains(t, output, "[1] Sheet1")
	assert.NotContains(t, output, "literals=")
}

func TestDescribe_MissingFile(t *testing.T) {
	_, err := Describe(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
