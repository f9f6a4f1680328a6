package xlmortgage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// block is a named rectangular region of the generated layout.
type block struct {
	name string
	area AreaRef
}

func layoutBlocks(sheet string) []block {
	switch sheet {
	case CalculatorSheet:
		return []block{
			{"inputs", NewAreaRef(LoanAmountCell, StartDateCell)},
			{"results", NewAreaRef(MonthlyPaymentCell, InterestRatioCell)},
			{"schedule", NewAreaRef(ScheduleCell(ColPaymentNumber, 1), ScheduleCell(ColBalance, MaxPayments))},
		}
	case SummarySheet:
		return []block{
			{"years", NewAreaRef(SummaryCell(ColYear, 1), SummaryCell(ColEndBalance, MaxYears))},
		}
	case InstructionsSheet:
		last := InstructionLines[len(InstructionLines)-1].Row
		return []block{
			{"text", NewAreaRef(CellAt(sheet, "B", 1), CellAt(sheet, "B", last))},
		}
	}
	return nil
}

// Describe opens a calculator workbook and returns a human-readable outline:
// sheets in order, merged banners, layout blocks with their literal and
// formula cell counts, and the spreadsheet functions in use.
func Describe(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()

	out, err := DescribeFile(f)
	if err != nil {
		return "", err
	}
	return "Workbook: " + path + "\n" + out, nil
}

// DescribeFile returns the outline of Describe for an open workbook.
func DescribeFile(f *excelize.File) (string, error) {
	var b strings.Builder
	for i, sheet := range f.GetSheetList() {
		dim, _ := f.GetSheetDimension(sheet)
		fmt.Fprintf(&b, "[%d] %s", i+1, sheet)
		if dim != "" {
			fmt.Fprintf(&b, " (%s)", dim)
		}
		b.WriteByte('\n')

		merges, err := f.GetMergeCells(sheet)
		if err != nil {
			return "", fmt.Errorf("merged cells of %q: %w", sheet, err)
		}
		for _, m := range merges {
			fmt.Fprintf(&b, "  merged %s:%s %q\n", m.GetStartAxis(), m.GetEndAxis(), m.GetCellValue())
		}

		functions := make(map[string]bool)
		for _, blk := range layoutBlocks(sheet) {
			literals, formulas, err := countCells(f, blk.area, functions)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "  %-9s %s:%s %s literals=%d formulas=%d\n",
				blk.name, blk.area.First.CellName(), blk.area.Last.CellName(),
				blk.area.Size(), literals, formulas)
		}
		if len(functions) > 0 {
			names := make([]string, 0, len(functions))
			for fn := range functions {
				names = append(names, fn)
			}
			sort.Strings(names)
			fmt.Fprintf(&b, "  functions: %s\n", strings.Join(names, ", "))
		}
	}
	return b.String(), nil
}

// countCells counts literal and formula cells in an area and collects the
// functions its formulas call.
func countCells(f *excelize.File, area AreaRef, functions map[string]bool) (literals, formulas int, err error) {
	sheet := area.First.Sheet
	for row := area.First.Row; row <= area.Last.Row; row++ {
		for col := area.First.Col; col <= area.Last.Col; col++ {
			cell := NewCellRef(sheet, row, col).CellName()
			formula, err := f.GetCellFormula(sheet, cell)
			if err != nil {
				return 0, 0, fmt.Errorf("read formula %s!%s: %w", sheet, cell, err)
			}
			if formula != "" {
				formulas++
				for _, fn := range AnalyzeFormula(formula, sheet).Functions {
					functions[fn] = true
				}
				continue
			}
			val, err := f.GetCellValue(sheet, cell)
			if err != nil {
				return 0, 0, fmt.Errorf("read value %s!%s: %w", sheet, cell, err)
			}
			if val != "" {
				literals++
			}
		}
	}
	return literals, formulas, nil
}
