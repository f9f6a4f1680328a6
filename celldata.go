package xlmortgage

// CellType represents the type of data written to a cell.
type CellType int

const (
	CellBlank CellType = iota
	CellString
	CellNumber
	CellDate
	CellFormula
)

// String returns a human-readable name for the CellType.
func (ct CellType) String() string {
	switch ct {
	case CellBlank:
		return "Blank"
	case CellString:
		return "String"
	case CellNumber:
		return "Number"
	case CellDate:
		return "Date"
	case CellFormula:
		return "Formula"
	default:
		return "Unknown"
	}
}

// CellRole is the semantic role of a cell. The styling pass derives fonts,
// fills, borders and alignment from it.
type CellRole int

const (
	RoleNone             CellRole = iota
	RoleTitle                     // workbook title, large blue bold text
	RoleSheetTitle                // title of a secondary sheet
	RoleSection                   // section banner, bold white on dark blue
	RoleColumnHeader              // table column header, bold white on blue
	RoleLabel                     // bold label next to an input or result
	RoleInput                     // user-editable literal, blue fill
	RoleResult                    // derived single-cell formula, green fill
	RoleTableFormula              // bordered formula cell in a generated table
	RoleTableIndex                // bordered, centered index cell in a generated table
	RoleTableInput                // bordered user-editable literal in a generated table
	RoleInstructionHead           // numbered instruction heading
	RoleInstructionTip            // tips heading
	RoleText                      // plain text
)

// String returns a human-readable name for the CellRole.
func (r CellRole) String() string {
	switch r {
	case RoleTitle:
		return "Title"
	case RoleSheetTitle:
		return "SheetTitle"
	case RoleSection:
		return "Section"
	case RoleColumnHeader:
		return "ColumnHeader"
	case RoleLabel:
		return "Label"
	case RoleInput:
		return "Input"
	case RoleResult:
		return "Result"
	case RoleTableFormula:
		return "TableFormula"
	case RoleTableIndex:
		return "TableIndex"
	case RoleTableInput:
		return "TableInput"
	case RoleInstructionHead:
		return "InstructionHead"
	case RoleInstructionTip:
		return "InstructionTip"
	case RoleText:
		return "Text"
	default:
		return "None"
	}
}

// Editable reports whether cells of this role are meant to be changed by the user.
func (r CellRole) Editable() bool {
	return r == RoleInput || r == RoleTableInput
}

// NumFmt names the display format of a cell.
type NumFmt int

const (
	FmtGeneral NumFmt = iota
	FmtCurrency
	FmtPercent
	FmtInteger
	FmtDate
	FmtMonth
)

// CellData holds everything written to a single cell.
type CellData struct {
	Ref     CellRef
	Value   any    // literal value; nil for formula cells
	Formula string // formula without leading "="
	Type    CellType
	Role    CellRole
	Format  NumFmt
}

// IsFormulaCell returns true if the cell holds a formula.
func (cd *CellData) IsFormulaCell() bool {
	return cd.Formula != ""
}
