package xlmortgage

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // The workbook computes wrong results or cannot be edited as intended
	SeverityWarning                 // The workbook works but deviates from the generated layout
)

// ValidationIssue represents a single problem found in a generated workbook.
type ValidationIssue struct {
	Severity Severity
	CellRef  CellRef
	Message  string
}

// String formats the issue as "[ERROR] Sheet1!A2: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.CellRef, v.Message)
}

// HasErrors reports whether any issue is error-severity.
func HasErrors(issues []ValidationIssue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate opens a calculator workbook and checks its structure: sheet order,
// literal inputs, the schedule's balance chain and the summary's cross-sheet
// references. A non-nil error means the file could not be opened at all.
func Validate(path string) ([]ValidationIssue, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()
	return ValidateFile(f)
}

// ValidateFile runs the checks of Validate on an open workbook.
func ValidateFile(f *excelize.File) ([]ValidationIssue, error) {
	v := &validator{file: f}

	v.validateSheets()
	if v.has(CalculatorSheet) {
		v.validateInputs()
		v.validateResults()
		v.validateSchedule()
	}
	if v.has(SummarySheet) {
		v.validateSummary()
	}
	if v.has(InstructionsSheet) {
		v.validateInstructions()
	}
	if v.err != nil {
		return nil, v.err
	}
	return v.issues, nil
}

type validator struct {
	file   *excelize.File
	sheets []string
	issues []ValidationIssue
	err    error
}

func (v *validator) add(sev Severity, ref CellRef, format string, args ...any) {
	v.issues = append(v.issues, ValidationIssue{Severity: sev, CellRef: ref, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) has(sheet string) bool {
	return slices.Contains(v.sheets, sheet)
}

// formula reads the formula of a cell, remembering the first read error.
func (v *validator) formula(ref CellRef) string {
	if v.err != nil {
		return ""
	}
	formula, err := v.file.GetCellFormula(ref.Sheet, ref.CellName())
	if err != nil {
		v.err = fmt.Errorf("read formula %s: %w", ref, err)
		return ""
	}
	return formula
}

func (v *validator) value(ref CellRef) string {
	if v.err != nil {
		return ""
	}
	val, err := v.file.GetCellValue(ref.Sheet, ref.CellName(), excelize.Options{RawCellValue: true})
	if err != nil {
		v.err = fmt.Errorf("read value %s: %w", ref, err)
		return ""
	}
	return val
}

func (v *validator) validateSheets() {
	v.sheets = v.file.GetSheetList()
	for _, name := range SheetOrder {
		if !v.has(name) {
			v.add(SeverityError, CellRef{Sheet: name}, "%v", ErrSheetMissing)
		}
	}
	if !slices.Equal(v.sheets, SheetOrder) {
		v.add(SeverityError, CellRef{}, "sheets are %q, want %q", v.sheets, SheetOrder)
	}
}

// checkLiteral reports a cell that holds a formula or nothing at all.
func (v *validator) checkLiteral(ref CellRef, what string) {
	if f := v.formula(ref); f != "" {
		v.add(SeverityError, ref, "%s must be a literal value, found formula %q", what, f)
		return
	}
	if v.value(ref) == "" {
		v.add(SeverityWarning, ref, "%s is empty", what)
	}
}

// checkFormula analyzes a formula cell and reports parse problems and functions
// outside the supported set. It returns nil when the cell holds no formula.
func (v *validator) checkFormula(ref CellRef) *FormulaInfo {
	text := v.formula(ref)
	if text == "" {
		v.add(SeverityError, ref, "%v", ErrNotFormula)
		return nil
	}
	info := AnalyzeFormula(text, ref.Sheet)
	for _, p := range info.Problems {
		v.add(SeverityError, ref, "formula %q: %s", text, p)
	}
	if unknown := info.UnknownFunctions(); len(unknown) > 0 {
		v.add(SeverityError, ref, "formula uses unsupported functions %s", strings.Join(unknown, ", "))
	}
	return &info
}

func (v *validator) validateInputs() {
	for _, field := range inputBlock {
		v.checkLiteral(field.cell, strings.TrimSuffix(field.label, ":"))
	}
}

func (v *validator) validateResults() {
	for _, field := range resultBlock {
		info := v.checkFormula(field.cell)
		if info == nil {
			continue
		}
		for _, ref := range info.CellRefs() {
			if ref.Sheet != CalculatorSheet || !isInputOrResult(ref) {
				v.add(SeverityError, field.cell, "result refers to %s outside the input and result blocks", ref)
			}
		}
	}
}

func isInputOrResult(ref CellRef) bool {
	for _, field := range inputBlock {
		if field.cell == ref {
			return true
		}
	}
	for _, field := range resultBlock {
		if field.cell == ref {
			return true
		}
	}
	return false
}

// validateSchedule walks the balance chain: the principal, interest and
// balance of payment i must read the balance of payment i-1, and payment 1
// must read the loan amount.
func (v *validator) validateSchedule() {
	for i := 1; i <= MaxPayments && v.err == nil; i++ {
		prev := LoanAmountCell
		if i > 1 {
			prev = ScheduleCell(ColBalance, i-1)
		}
		for _, c := range scheduleColumns {
			ref := ScheduleCell(c.col, i)
			if c.formula == "" {
				v.checkLiteral(ref, "extra payment")
				continue
			}
			info := v.checkFormula(ref)
			if info == nil {
				continue
			}
			switch c.col {
			case ColPrincipal, ColInterest, ColBalance:
				if !info.References(prev) {
					v.add(SeverityError, ref, "payment %d does not reference prior balance %s", i, prev.CellName())
				}
			}
		}
	}
}

// validateSummary checks that each year's end balance reads the schedule row
// of that year's last payment.
func (v *validator) validateSummary() {
	for y := 1; y <= MaxYears && v.err == nil; y++ {
		for _, c := range summaryColumns {
			ref := SummaryCell(c.col, y)
			info := v.checkFormula(ref)
			if info == nil || c.col != ColEndBalance {
				continue
			}
			want := CellAt(CalculatorSheet, ColBalance, EndBalanceRow(y))
			refs := info.CellRefs()
			var found bool
			for _, r := range refs {
				if r.Sheet != CalculatorSheet {
					continue
				}
				if r == want {
					found = true
				} else {
					v.add(SeverityError, ref, "year %d end balance reads %s, want %s", y, r, want)
				}
			}
			if !found {
				v.add(SeverityError, ref, "year %d end balance does not reference %s", y, want)
			}
		}
	}
}

func (v *validator) validateInstructions() {
	for _, line := range InstructionLines {
		ref := CellAt(InstructionsSheet, "B", line.Row)
		if f := v.formula(ref); f != "" {
			v.add(SeverityWarning, ref, "instructions hold formula %q", f)
		}
	}
}
