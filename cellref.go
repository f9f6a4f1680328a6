package xlmortgage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRef represents a single cell reference in a workbook.
type CellRef struct {
	Sheet string // sheet name (empty = current sheet)
	Row   int    // 0-based row index
	Col   int    // 0-based column index
}

// NewCellRef creates a CellRef with explicit sheet, row, col.
func NewCellRef(sheet string, row, col int) CellRef {
	return CellRef{Sheet: sheet, Row: row, Col: col}
}

// CellAt creates a CellRef from a column name and a 1-based row number,
// the way addresses are written in formulas: CellAt(s, "C", 8) is s!C8.
func CellAt(sheet, col string, row int) CellRef {
	c, err := NameToCol(col)
	if err != nil {
		panic(fmt.Sprintf("xlmortgage: bad column %q", col))
	}
	return CellRef{Sheet: sheet, Row: row - 1, Col: c}
}

// ParseCellRef parses a cell reference string like "A1", "Sheet1!B5", "'My Sheet'!C$8" or "$A$1".
func ParseCellRef(s string) (CellRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CellRef{}, fmt.Errorf("%w: empty cell reference", ErrInvalidReference)
	}

	var sheet string
	cellPart := s

	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		sheet = unquoteSheet(s[:idx])
		cellPart = s[idx+1:]
	}

	cellPart = strings.ReplaceAll(cellPart, "$", "")
	if cellPart == "" {
		return CellRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, s)
	}

	col, row, err := parseCellName(cellPart)
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}

	return CellRef{Sheet: sheet, Row: row, Col: col}, nil
}

// parseCellName parses "A1" into col=0, row=0.
func parseCellName(name string) (col, row int, err error) {
	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return 0, 0, fmt.Errorf("%w: cell name %q", ErrInvalidReference, name)
	}

	col, err = NameToCol(name[:i])
	if err != nil {
		return 0, 0, err
	}

	rowNum, err := strconv.Atoi(name[i:])
	if err != nil || rowNum < 1 {
		return 0, 0, fmt.Errorf("%w: row in cell name %q", ErrInvalidReference, name)
	}

	return col, rowNum - 1, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// String formats the CellRef as "Sheet1!A1" or "A1" if no sheet.
func (c CellRef) String() string {
	if c.Sheet != "" {
		return QuoteSheet(c.Sheet) + "!" + c.CellName()
	}
	return c.CellName()
}

// CellName returns just the cell part like "A1" without sheet name.
func (c CellRef) CellName() string {
	return ColToName(c.Col) + strconv.Itoa(c.Row+1)
}

// ColName returns the column letters of the reference.
func (c CellRef) ColName() string {
	return ColToName(c.Col)
}

// RowNum returns the 1-based row number as it appears in an address.
func (c CellRef) RowNum() int {
	return c.Row + 1
}

// AbsRow returns the cell name with the row anchored, e.g. "C$8".
func (c CellRef) AbsRow() string {
	return ColToName(c.Col) + "$" + strconv.Itoa(c.Row+1)
}

// QualifiedAbsRow returns the sheet-qualified, row-anchored name, e.g. "'My Sheet'!C$8".
func (c CellRef) QualifiedAbsRow() string {
	return QuoteSheet(c.Sheet) + "!" + c.AbsRow()
}

// Offset returns the reference moved by the given number of rows and columns.
func (c CellRef) Offset(rows, cols int) CellRef {
	return CellRef{Sheet: c.Sheet, Row: c.Row + rows, Col: c.Col + cols}
}

// QuoteSheet wraps a sheet name in single quotes when a formula needs them.
func QuoteSheet(name string) string {
	if strings.ContainsAny(name, " -'()") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}

// unquoteSheet reverses QuoteSheet.
func unquoteSheet(name string) string {
	if len(name) >= 2 && name[0] == '\'' && name[len(name)-1] == '\'' {
		return strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	return name
}

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA", 702→"AAA". Out-of-range indexes give "".
func ColToName(col int) string {
	name, _ := excelize.ColumnNumberToName(col + 1)
	return name
}

// NameToCol converts a column name to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26
func NameToCol(name string) (int, error) {
	n, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, fmt.Errorf("%w: column name %q", ErrInvalidReference, name)
	}
	return n - 1, nil
}

// AreaRef represents a rectangular area defined by two cell references.
type AreaRef struct {
	First CellRef
	Last  CellRef
}

// NewAreaRef creates an AreaRef from two cell references.
func NewAreaRef(first, last CellRef) AreaRef {
	return AreaRef{First: first, Last: last}
}

// ParseAreaRef parses an area reference string like "A1:C5" or "Sheet1!A1:C5".
// A single cell parses as a 1x1 area.
func ParseAreaRef(s string) (AreaRef, error) {
	s = strings.TrimSpace(s)
	sheet := ""
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		sheet = unquoteSheet(s[:idx])
		s = s[idx+1:]
	}
	parts := strings.SplitN(s, ":", 2)

	first, err := ParseCellRef(parts[0])
	if err != nil {
		return AreaRef{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}
	first.Sheet = sheet
	if len(parts) == 1 {
		return AreaRef{First: first, Last: first}, nil
	}

	last, err := ParseCellRef(parts[1])
	if err != nil {
		return AreaRef{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}
	last.Sheet = sheet
	return AreaRef{First: first, Last: last}, nil
}

// String formats the AreaRef as "Sheet1!A1:C5" or "A1:C5".
func (a AreaRef) String() string {
	cells := a.First.CellName() + ":" + a.Last.CellName()
	if a.First.Sheet != "" {
		return QuoteSheet(a.First.Sheet) + "!" + cells
	}
	return cells
}

// QualifiedAbsRows formats the area sheet-qualified with both rows anchored,
// e.g. "'My Sheet'!B$23:B$382".
func (a AreaRef) QualifiedAbsRows() string {
	return QuoteSheet(a.First.Sheet) + "!" + a.First.AbsRow() + ":" + a.Last.AbsRow()
}

// Size returns the dimensions of the area.
func (a AreaRef) Size() Size {
	return Size{
		Width:  a.Last.Col - a.First.Col + 1,
		Height: a.Last.Row - a.First.Row + 1,
	}
}

// Contains returns true if the given cell reference is within this area.
func (a AreaRef) Contains(ref CellRef) bool {
	if a.First.Sheet != "" && a.First.Sheet != ref.Sheet {
		return false
	}
	return ref.Row >= a.First.Row && ref.Row <= a.Last.Row &&
		ref.Col >= a.First.Col && ref.Col <= a.Last.Col
}

// IsCell reports whether the area covers a single cell.
func (a AreaRef) IsCell() bool {
	return a.First.Row == a.Last.Row && a.First.Col == a.Last.Col
}

// Size represents width (columns) and height (rows).
type Size struct {
	Width  int
	Height int
}

// String formats the Size as "(WxH)".
func (s Size) String() string {
	return fmt.Sprintf("(%dx%d)", s.Width, s.Height)
}
