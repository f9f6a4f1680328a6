package xlmortgage

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Palette.
const (
	colorBrand        = "2F5496" // titles and section banners
	colorColumnHeader = "4472C4"
	colorInput        = "D6EAF8" // blue: user-editable
	colorResult       = "D5F5E3" // green: derived
	colorWhite        = "FFFFFF"
)

// Custom number formats by NumFmt.
var numFmtCodes = map[NumFmt]string{
	FmtCurrency: `"$"#,##0.00`,
	FmtPercent:  `0.00%`,
	FmtInteger:  `0`,
	FmtDate:     `yyyy-mm-dd`,
	FmtMonth:    `mmm-yyyy`,
}

// ColumnWidths is applied to every sheet.
var ColumnWidths = []struct {
	From, To string
	Width    float64
}{
	{"A", "A", 3},
	{"B", "B", 25},
	{"C", "C", 18},
	{"D", "G", 15},
	{"H", "H", 18},
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

// roleStyle returns the base style for a role, before any number format.
// A nil result means the cell keeps the default style.
func roleStyle(role CellRole) *excelize.Style {
	switch role {
	case RoleTitle:
		return &excelize.Style{Font: &excelize.Font{Bold: true, Size: 18, Color: colorBrand}}
	case RoleSheetTitle:
		return &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16, Color: colorBrand}}
	case RoleSection:
		return &excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 14, Color: colorWhite},
			Fill: solidFill(colorBrand),
		}
	case RoleColumnHeader:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: colorWhite},
			Fill:      solidFill(colorColumnHeader),
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    thinBorder,
		}
	case RoleLabel:
		return &excelize.Style{Font: &excelize.Font{Bold: true}}
	case RoleInput, RoleTableInput:
		return &excelize.Style{Fill: solidFill(colorInput), Border: thinBorder}
	case RoleResult:
		return &excelize.Style{Fill: solidFill(colorResult), Border: thinBorder}
	case RoleTableFormula:
		return &excelize.Style{Border: thinBorder}
	case RoleTableIndex:
		return &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    thinBorder,
		}
	case RoleInstructionHead:
		return &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}
	case RoleInstructionTip:
		return &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12, Color: colorBrand}}
	default:
		return nil
	}
}

type styleKey struct {
	role   CellRole
	format NumFmt
}

// styleCache registers each (role, format) combination with excelize once.
type styleCache struct {
	file *excelize.File
	ids  map[styleKey]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{file: f, ids: make(map[styleKey]int)}
}

// id returns the style ID for a role and number format; 0 means default.
func (sc *styleCache) id(role CellRole, format NumFmt) (int, error) {
	key := styleKey{role, format}
	if id, ok := sc.ids[key]; ok {
		return id, nil
	}
	style := roleStyle(role)
	if code, ok := numFmtCodes[format]; ok {
		if style == nil {
			style = &excelize.Style{}
		}
		style.CustomNumFmt = &code
	}
	if style == nil {
		sc.ids[key] = 0
		return 0, nil
	}
	id, err := sc.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("new style for %s: %w", role, err)
	}
	sc.ids[key] = id
	return id, nil
}

// ApplyStyles is the presentation pass. It runs after all content is written
// and styles every recorded cell by role and format, then sets column widths
// on every sheet.
func ApplyStyles(wb *Workbook) error {
	cache := newStyleCache(wb.file)
	for _, sheet := range wb.SheetNames() {
		for _, cd := range wb.Cells(sheet) {
			id, err := cache.id(cd.Role, cd.Format)
			if err != nil {
				return err
			}
			if id == 0 {
				continue
			}
			cell := cd.Ref.CellName()
			if err := wb.file.SetCellStyle(sheet, cell, cell, id); err != nil {
				return fmt.Errorf("style %s: %w", cd.Ref, err)
			}
		}
		for _, cw := range ColumnWidths {
			if err := wb.file.SetColWidth(sheet, cw.From, cw.To, cw.Width); err != nil {
				return fmt.Errorf("column width %s!%s:%s: %w", sheet, cw.From, cw.To, err)
			}
		}
	}
	return nil
}
