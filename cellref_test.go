package xlmortgage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- CellRef Tests ---

func TestParseCellRef_SimpleCell(t *testing.T) {
	ref, err := ParseCellRef("A1")
	require.NoError(t, err)
	assert.Equal(t, "", ref.Sheet)
	assert.Equal(t, 0, ref.Row)
	assert.Equal(t, 0, ref.Col)
}

func TestParseCellRef_WithSheet(t *testing.T) {
	ref, err := ParseCellRef("Sheet1!B5")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", ref.Sheet)
	assert.Equal(t, 4, ref.Row) // 0-based
	assert.Equal(t, 1, ref.Col)
}

func TestParseCellRef_QuotedSheetAnchoredRow(t *testing.T) {
	ref, err := ParseCellRef("'Mortgage Calculator'!C$8")
	require.NoError(t, err)
	assert.Equal(t, TermYearsCell, ref)
}

func TestParseCellRef_SheetWithApostrophe(t *testing.T) {
	want := CellAt("Bob's Loan", "C", 8)
	ref, err := ParseCellRef(want.String())
	require.NoError(t, err)
	assert.Equal(t, "Bob's Loan", ref.Sheet)
	assert.Equal(t, want, ref)

	area, err := ParseAreaRef("'Bob''s Loan'!B23:H382")
	require.NoError(t, err)
	assert.Equal(t, "Bob's Loan", area.First.Sheet)
	assert.Equal(t, "'Bob''s Loan'!B23:H382", area.String())
}

func TestParseCellRef_AbsoluteRef(t *testing.T) {
	ref, err := ParseCellRef("$H$34")
	require.NoError(t, err)
	assert.Equal(t, 33, ref.Row)
	assert.Equal(t, 7, ref.Col)
}

func TestParseCellRef_Invalid(t *testing.T) {
	for _, s := range []string{"", "A", "123", "A0", "Sheet1!", "1A"} {
		_, err := ParseCellRef(s)
		assert.ErrorIs(t, err, ErrInvalidReference, s)
	}
}

func TestCellAt(t *testing.T) {
	ref := CellAt("Sheet1", "H", 382)
	assert.Equal(t, 381, ref.Row)
	assert.Equal(t, 7, ref.Col)
	assert.Equal(t, 382, ref.RowNum())
	assert.Equal(t, "H", ref.ColName())
}

func TestCellAt_BadColumnPanics(t *testing.T) {
	assert.Panics(t, func() { CellAt("Sheet1", "7", 1) })
}

func TestCellRef_String(t *testing.T) {
	assert.Equal(t, "Sheet1!B5", NewCellRef("Sheet1", 4, 1).String())
	assert.Equal(t, "A1", NewCellRef("", 0, 0).String())
	assert.Equal(t, "'Mortgage Calculator'!H34", CellAt(CalculatorSheet, "H", 34).String())
}

func TestCellRef_AbsRow(t *testing.T) {
	assert.Equal(t, "C$8", TermYearsCell.AbsRow())
	assert.Equal(t, "'Mortgage Calculator'!C$8", TermYearsCell.QualifiedAbsRow())
}

func TestCellRef_Offset(t *testing.T) {
	assert.Equal(t, CellAt(CalculatorSheet, "B", 6), LoanAmountCell.Offset(0, -1))
	assert.Equal(t, CellAt(CalculatorSheet, "C", 7), LoanAmountCell.Offset(1, 0))
}

func TestQuoteSheet(t *testing.T) {
	assert.Equal(t, "Sheet1", QuoteSheet("Sheet1"))
	assert.Equal(t, "Instructions", QuoteSheet(InstructionsSheet))
	assert.Equal(t, "'Yearly Summary'", QuoteSheet(SummarySheet))
	assert.Equal(t, "'Bob''s'", QuoteSheet("Bob's"))
	assert.Equal(t, "'a-b'", QuoteSheet("a-b"))
}

func TestColToName(t *testing.T) {
	assert.Equal(t, "A", ColToName(0))
	assert.Equal(t, "H", ColToName(7))
	assert.Equal(t, "Z", ColToName(25))
	assert.Equal(t, "AA", ColToName(26))
	assert.Equal(t, "AZ", ColToName(51))
	assert.Equal(t, "AAA", ColToName(702))
}

func TestNameToCol(t *testing.T) {
	for name, want := range map[string]int{"A": 0, "h": 7, "Z": 25, "AA": 26, "AAA": 702} {
		got, err := NameToCol(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := NameToCol("")
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = NameToCol("A1")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

// --- AreaRef Tests ---

func TestParseAreaRef(t *testing.T) {
	area, err := ParseAreaRef("'Mortgage Calculator'!B$23:B$382")
	require.NoError(t, err)
	assert.Equal(t, ScheduleColumn(ColPaymentNumber), area)
	assert.Equal(t, Size{Width: 1, Height: 360}, area.Size())
	assert.False(t, area.IsCell())
}

func TestParseAreaRef_UnquotedSheet(t *testing.T) {
	// The formula tokenizer drops the quotes around sheet names.
	area, err := ParseAreaRef("Mortgage Calculator!E$23:E$382")
	require.NoError(t, err)
	assert.Equal(t, ScheduleColumn(ColPrincipal), area)
}

func TestParseAreaRef_SingleCell(t *testing.T) {
	area, err := ParseAreaRef("H22")
	require.NoError(t, err)
	assert.True(t, area.IsCell())
	assert.Equal(t, "", area.First.Sheet)
	assert.Equal(t, "H22:H22", area.String())
}

func TestParseAreaRef_Invalid(t *testing.T) {
	_, err := ParseAreaRef("A1:")
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = ParseAreaRef("Sheet1!")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestAreaRef_Strings(t *testing.T) {
	area := ScheduleColumn(ColBalance)
	assert.Equal(t, "'Mortgage Calculator'!H23:H382", area.String())
	assert.Equal(t, "'Mortgage Calculator'!H$23:H$382", area.QualifiedAbsRows())
	assert.Equal(t, "B2:E2", NewAreaRef(NewCellRef("", 1, 1), NewCellRef("", 1, 4)).String())
}

func TestAreaRef_Contains(t *testing.T) {
	area := ScheduleColumn(ColPaymentNumber)
	assert.True(t, area.Contains(ScheduleCell(ColPaymentNumber, 1)))
	assert.True(t, area.Contains(ScheduleCell(ColPaymentNumber, MaxPayments)))
	assert.False(t, area.Contains(CellAt(CalculatorSheet, "B", 22)))
	assert.False(t, area.Contains(ScheduleCell(ColPaymentDate, 1)))
	assert.False(t, area.Contains(CellAt(SummarySheet, "B", 23)))

	unqualified := NewAreaRef(NewCellRef("", 0, 0), NewCellRef("", 9, 9))
	assert.True(t, unqualified.Contains(CellAt(SummarySheet, "C", 5)))
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "(7x360)", Size{Width: 7, Height: 360}.String())
}
