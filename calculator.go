package xlmortgage

import "fmt"

type inputField struct {
	label  string
	cell   CellRef
	value  func(LoanInputs) any
	format NumFmt
}

var inputBlock = []inputField{
	{"Loan Amount:", LoanAmountCell, func(in LoanInputs) any { return in.Amount }, FmtCurrency},
	{"Annual Interest Rate:", AnnualRateCell, func(in LoanInputs) any { return in.AnnualRate }, FmtPercent},
	{"Loan Term (Years):", TermYearsCell, func(in LoanInputs) any { return in.TermYears }, FmtInteger},
	{"Start Date:", StartDateCell, func(in LoanInputs) any { return in.StartDate }, FmtDate},
}

type resultField struct {
	label   string
	cell    CellRef
	formula FormulaTemplate
	format  NumFmt
}

var resultBlock = []resultField{
	{"Monthly Payment:", MonthlyPaymentCell, MonthlyPaymentFormula, FmtCurrency},
	{"Total Payments:", TotalPaymentsCell, TotalPaymentsFormula, FmtGeneral},
	{"Total Amount Paid:", TotalPaidCell, TotalPaidFormula, FmtCurrency},
	{"Total Interest Paid:", TotalInterestCell, TotalInterestFormula, FmtCurrency},
	{"Interest to Principal Ratio:", InterestRatioCell, InterestRatioFormula, FmtPercent},
}

type scheduleColumn struct {
	col     string
	header  string
	formula FormulaTemplate // empty for the editable extra payment column
	role    CellRole
	format  NumFmt
}

var scheduleColumns = []scheduleColumn{
	{ColPaymentNumber, "Payment #", PaymentNumberFormula, RoleTableIndex, FmtGeneral},
	{ColPaymentDate, "Payment Date", PaymentDateFormula, RoleTableFormula, FmtMonth},
	{ColPayment, "Payment", PaymentFormula, RoleTableFormula, FmtCurrency},
	{ColPrincipal, "Principal", PrincipalFormula, RoleTableFormula, FmtCurrency},
	{ColInterest, "Interest", InterestFormula, RoleTableFormula, FmtCurrency},
	{ColExtraPayment, "Extra Payment", "", RoleTableInput, FmtCurrency},
	{ColBalance, "Balance", BalanceFormula, RoleTableFormula, FmtCurrency},
}

// label returns the cell left of an input or result cell.
func label(ref CellRef) CellRef {
	return ref.Offset(0, -1)
}

// buildCalculatorSheet lays out the input block, the results block and the
// amortization schedule on the first sheet.
func buildCalculatorSheet(wb *Workbook, ctx *Context, in LoanInputs) error {
	sheet := CalculatorSheet

	if err := writeBanner(wb, CellAt(sheet, "B", 2), "E", "MORTGAGE PAYMENT CALCULATOR", RoleTitle); err != nil {
		return err
	}

	if err := writeBanner(wb, CellAt(sheet, "B", 4), "E", "LOAN INPUTS", RoleSection); err != nil {
		return err
	}
	for _, field := range inputBlock {
		if err := wb.SetValue(label(field.cell), field.label, RoleLabel, FmtGeneral); err != nil {
			return err
		}
		if err := wb.SetValue(field.cell, field.value(in), RoleInput, field.format); err != nil {
			return err
		}
	}

	if err := writeBanner(wb, CellAt(sheet, "B", 11), "E", "CALCULATED RESULTS", RoleSection); err != nil {
		return err
	}
	for _, field := range resultBlock {
		if err := wb.SetValue(label(field.cell), field.label, RoleLabel, FmtGeneral); err != nil {
			return err
		}
		formula, err := field.formula.Render(ctx)
		if err != nil {
			return fmt.Errorf("result %s: %w", field.cell, err)
		}
		if err := wb.SetFormula(field.cell, formula, RoleResult, field.format); err != nil {
			return err
		}
	}

	if err := writeBanner(wb, CellAt(sheet, "B", 20), "H", "AMORTIZATION SCHEDULE", RoleSection); err != nil {
		return err
	}
	for _, c := range scheduleColumns {
		ref := CellAt(sheet, c.col, ScheduleHeaderRow)
		if err := wb.SetValue(ref, c.header, RoleColumnHeader, FmtGeneral); err != nil {
			return err
		}
	}
	for i := 1; i <= MaxPayments; i++ {
		if err := writeScheduleRow(wb, ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// writeScheduleRow writes payment i. Each row's principal, interest and
// balance depend on the balance cell of row i-1; row 1 uses the loan amount.
func writeScheduleRow(wb *Workbook, ctx *Context, i int) error {
	prevBalance := LoanAmountCell.AbsRow()
	if i > 1 {
		prevBalance = ScheduleCell(ColBalance, i-1).CellName()
	}

	rv := NewRunVars(ctx)
	defer rv.Close()
	rv.Set("i", i)
	rv.Set("num", ScheduleCell(ColPaymentNumber, i).CellName())
	rv.Set("principal", ScheduleCell(ColPrincipal, i).CellName())
	rv.Set("extra", ScheduleCell(ColExtraPayment, i).CellName())
	rv.Set("prevBalance", prevBalance)

	for _, c := range scheduleColumns {
		ref := ScheduleCell(c.col, i)
		if c.formula == "" {
			if err := wb.SetValue(ref, 0, c.role, c.format); err != nil {
				return err
			}
			continue
		}
		formula, err := c.formula.Render(ctx)
		if err != nil {
			return fmt.Errorf("schedule row %d: %w", i, err)
		}
		if err := wb.SetFormula(ref, formula, c.role, c.format); err != nil {
			return err
		}
	}
	return nil
}

// writeBanner writes a title or section text at ref and merges it across to lastCol.
func writeBanner(wb *Workbook, ref CellRef, lastCol, text string, role CellRole) error {
	if err := wb.SetValue(ref, text, role, FmtGeneral); err != nil {
		return err
	}
	return wb.Merge(NewAreaRef(ref, CellAt(ref.Sheet, lastCol, ref.RowNum())))
}
