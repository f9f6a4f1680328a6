package xlmortgage

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps an excelize file and keeps an in-memory record of every
// cell written to it, so later passes (styling, describe) can walk the
// content without re-reading the sheets.
type Workbook struct {
	file   *excelize.File
	sheets map[string]*SheetData
	order  []string
}

// SheetData holds in-memory data for a single sheet.
type SheetData struct {
	Name   string
	Rows   map[int]*RowData
	Merges []AreaRef
}

// RowData holds in-memory data for a single row.
type RowData struct {
	Cells map[int]*CellData
}

// NewWorkbook creates an empty workbook whose first sheet is named first.
func NewWorkbook(first string) (*Workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	wb := &Workbook{
		file:   f,
		sheets: make(map[string]*SheetData),
	}
	wb.track(first)
	return wb, nil
}

func (wb *Workbook) track(name string) {
	wb.sheets[name] = &SheetData{Name: name, Rows: make(map[int]*RowData)}
	wb.order = append(wb.order, name)
}

// AddSheet appends a sheet after the existing ones.
func (wb *Workbook) AddSheet(name string) error {
	if _, ok := wb.sheets[name]; ok {
		return fmt.Errorf("sheet %q already exists", name)
	}
	if _, err := wb.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	wb.track(name)
	return nil
}

// SetValue writes a literal value and records its role and format.
// A HyperlinkValue is written as its display text plus an internal link.
func (wb *Workbook) SetValue(ref CellRef, value any, role CellRole, format NumFmt) error {
	if link, ok := value.(HyperlinkValue); ok {
		if err := wb.file.SetCellHyperLink(ref.Sheet, ref.CellName(), link.Location.String(), "Location"); err != nil {
			return fmt.Errorf("set hyperlink %s: %w", ref, err)
		}
		value = link.String()
	}
	if err := wb.file.SetCellValue(ref.Sheet, ref.CellName(), value); err != nil {
		return fmt.Errorf("set value %s: %w", ref, err)
	}
	return wb.record(&CellData{
		Ref:    ref,
		Value:  value,
		Type:   valueType(value),
		Role:   role,
		Format: format,
	})
}

// SetFormula writes a formula (without leading "=") and records its role and format.
func (wb *Workbook) SetFormula(ref CellRef, formula string, role CellRole, format NumFmt) error {
	if err := wb.file.SetCellFormula(ref.Sheet, ref.CellName(), formula); err != nil {
		return fmt.Errorf("set formula %s: %w", ref, err)
	}
	return wb.record(&CellData{
		Ref:     ref,
		Formula: formula,
		Type:    CellFormula,
		Role:    role,
		Format:  format,
	})
}

// Merge merges a cell range. The top-left cell keeps its content.
func (wb *Workbook) Merge(area AreaRef) error {
	sd, ok := wb.sheets[area.First.Sheet]
	if !ok {
		return fmt.Errorf("merge %s: %w", area, ErrSheetMissing)
	}
	if err := wb.file.MergeCell(area.First.Sheet, area.First.CellName(), area.Last.CellName()); err != nil {
		return fmt.Errorf("merge %s: %w", area, err)
	}
	sd.Merges = append(sd.Merges, area)
	return nil
}

func (wb *Workbook) record(cd *CellData) error {
	sd, ok := wb.sheets[cd.Ref.Sheet]
	if !ok {
		return fmt.Errorf("record %s: %w", cd.Ref, ErrSheetMissing)
	}
	rd, ok := sd.Rows[cd.Ref.Row]
	if !ok {
		rd = &RowData{Cells: make(map[int]*CellData)}
		sd.Rows[cd.Ref.Row] = rd
	}
	rd.Cells[cd.Ref.Col] = cd
	return nil
}

func valueType(v any) CellType {
	switch v.(type) {
	case nil:
		return CellBlank
	case time.Time:
		return CellDate
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return CellNumber
	default:
		return CellString
	}
}

// GetCellData returns the recorded data for the given reference, or nil.
func (wb *Workbook) GetCellData(ref CellRef) *CellData {
	sd, ok := wb.sheets[ref.Sheet]
	if !ok {
		return nil
	}
	rd, ok := sd.Rows[ref.Row]
	if !ok {
		return nil
	}
	return rd.Cells[ref.Col]
}

// Cells returns the recorded cells of a sheet in row-major order.
func (wb *Workbook) Cells(sheet string) []*CellData {
	sd, ok := wb.sheets[sheet]
	if !ok {
		return nil
	}
	var out []*CellData
	for _, rd := range sd.Rows {
		for _, cd := range rd.Cells {
			out = append(out, cd)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ref.Row != out[j].Ref.Row {
			return out[i].Ref.Row < out[j].Ref.Row
		}
		return out[i].Ref.Col < out[j].Ref.Col
	})
	return out
}

// Merges returns the merged ranges of a sheet in the order they were added.
func (wb *Workbook) Merges(sheet string) []AreaRef {
	if sd, ok := wb.sheets[sheet]; ok {
		return sd.Merges
	}
	return nil
}

// SheetNames returns the sheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	return append([]string(nil), wb.order...)
}

// SetRecalculateOnOpen tells the spreadsheet application to recalculate all
// formulas when the file is opened. Generated formulas carry no cached values.
func (wb *Workbook) SetRecalculateOnOpen(recalc bool) error {
	return wb.file.SetCalcProps(&excelize.CalcPropsOptions{FullCalcOnLoad: &recalc})
}

// Write writes the workbook to the given writer.
func (wb *Workbook) Write(w io.Writer) error {
	return wb.file.Write(w)
}

// Close closes the underlying excelize file.
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// File returns the underlying excelize file for advanced operations.
func (wb *Workbook) File() *excelize.File {
	return wb.file
}
