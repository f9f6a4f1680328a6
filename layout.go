package xlmortgage

// Sheet names, in workbook order. Cross-sheet formulas embed these.
const (
	CalculatorSheet   = "Mortgage Calculator"
	SummarySheet      = "Yearly Summary"
	InstructionsSheet = "Instructions"
)

// SheetOrder lists the sheets in the order they appear in the workbook.
var SheetOrder = []string{CalculatorSheet, SummarySheet, InstructionsSheet}

// DefaultFileName is the name of the generated workbook.
const DefaultFileName = "Mortgage_Payment_Calculator.xlsx"

const (
	// MaxPayments is the fixed number of schedule rows. Terms longer than
	// 30 years are truncated to this many payments.
	MaxPayments = 360

	// MaxYears is the number of yearly summary rows.
	MaxYears = MaxPayments / MonthsPerYear

	// MonthsPerYear is the number of payments per year.
	MonthsPerYear = 12

	// ScheduleHeaderRow is the row of the amortization column headers.
	ScheduleHeaderRow = 22

	// SummaryHeaderRow is the row of the yearly summary column headers.
	SummaryHeaderRow = 4
)

// Input cells on the calculator sheet. These hold literals only.
var (
	LoanAmountCell = CellAt(CalculatorSheet, "C", 6)
	AnnualRateCell = CellAt(CalculatorSheet, "C", 7)
	TermYearsCell  = CellAt(CalculatorSheet, "C", 8)
	StartDateCell  = CellAt(CalculatorSheet, "C", 9)
)

// Result cells on the calculator sheet.
var (
	MonthlyPaymentCell = CellAt(CalculatorSheet, "C", 13)
	TotalPaymentsCell  = CellAt(CalculatorSheet, "C", 14)
	TotalPaidCell      = CellAt(CalculatorSheet, "C", 15)
	TotalInterestCell  = CellAt(CalculatorSheet, "C", 16)
	InterestRatioCell  = CellAt(CalculatorSheet, "C", 17)
)

// Amortization schedule columns.
const (
	ColPaymentNumber = "B"
	ColPaymentDate   = "C"
	ColPayment       = "D"
	ColPrincipal     = "E"
	ColInterest      = "F"
	ColExtraPayment  = "G"
	ColBalance       = "H"
)

// Yearly summary columns.
const (
	ColYear          = "B"
	ColPrincipalPaid = "C"
	ColInterestPaid  = "D"
	ColTotalPaid     = "E"
	ColEndBalance    = "F"
)

// ScheduleRow returns the 1-based sheet row holding payment i (1..MaxPayments).
func ScheduleRow(i int) int {
	return ScheduleHeaderRow + i
}

// FirstScheduleRow returns the row of payment 1.
func FirstScheduleRow() int { return ScheduleRow(1) }

// LastScheduleRow returns the row of the final schedule payment.
func LastScheduleRow() int { return ScheduleRow(MaxPayments) }

// ScheduleCell returns the schedule cell in the given column for payment i.
func ScheduleCell(col string, i int) CellRef {
	return CellAt(CalculatorSheet, col, ScheduleRow(i))
}

// ScheduleColumn returns the whole data range of a schedule column.
func ScheduleColumn(col string) AreaRef {
	return NewAreaRef(
		CellAt(CalculatorSheet, col, FirstScheduleRow()),
		CellAt(CalculatorSheet, col, LastScheduleRow()),
	)
}

// SummaryRow returns the 1-based row on the summary sheet for year y (1..MaxYears).
func SummaryRow(y int) int {
	return SummaryHeaderRow + y
}

// SummaryCell returns the summary cell in the given column for year y.
func SummaryCell(col string, y int) CellRef {
	return CellAt(SummarySheet, col, SummaryRow(y))
}

// YearPayments returns the first and last payment numbers of year y.
func YearPayments(y int) (first, last int) {
	return (y-1)*MonthsPerYear + 1, y * MonthsPerYear
}

// EndBalanceRow returns the schedule row whose balance closes year y.
func EndBalanceRow(y int) int {
	_, last := YearPayments(y)
	return ScheduleRow(last)
}
