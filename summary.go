package xlmortgage

import "fmt"

var summaryColumns = []struct {
	col     string
	header  string
	formula FormulaTemplate
	role    CellRole
	format  NumFmt
}{
	{ColYear, "Year", SummaryYearFormula, RoleTableIndex, FmtGeneral},
	{ColPrincipalPaid, "Principal Paid", SummaryPrincipalFormula, RoleTableFormula, FmtCurrency},
	{ColInterestPaid, "Interest Paid", SummaryInterestFormula, RoleTableFormula, FmtCurrency},
	{ColTotalPaid, "Total Paid", SummaryTotalFormula, RoleTableFormula, FmtCurrency},
	{ColEndBalance, "End Balance", SummaryBalanceFormula, RoleTableFormula, FmtCurrency},
}

// buildSummarySheet writes one row per year aggregating the schedule rows of
// that year. A year's end balance is read from the schedule row of its last
// payment.
func buildSummarySheet(wb *Workbook, ctx *Context) error {
	sheet := SummarySheet
	if err := writeBanner(wb, CellAt(sheet, "B", 2), "F", "YEARLY PAYMENT SUMMARY", RoleSheetTitle); err != nil {
		return err
	}
	for _, c := range summaryColumns {
		ref := CellAt(sheet, c.col, SummaryHeaderRow)
		if err := wb.SetValue(ref, c.header, RoleColumnHeader, FmtGeneral); err != nil {
			return err
		}
	}

	for y := 1; y <= MaxYears; y++ {
		if err := writeSummaryRow(wb, ctx, y); err != nil {
			return err
		}
	}
	return nil
}

func writeSummaryRow(wb *Workbook, ctx *Context, y int) error {
	first, last := YearPayments(y)
	endBalance := CellAt(CalculatorSheet, ColBalance, EndBalanceRow(y))

	rv := NewRunVars(ctx)
	defer rv.Close()
	rv.Set("year", y)
	rv.Set("firstPayment", first)
	rv.Set("lastPayment", last)
	rv.Set("yearCell", SummaryCell(ColYear, y).CellName())
	rv.Set("principalCell", SummaryCell(ColPrincipalPaid, y).CellName())
	rv.Set("interestCell", SummaryCell(ColInterestPaid, y).CellName())
	rv.Set("endBalance", endBalance.String())

	for _, c := range summaryColumns {
		formula, err := c.formula.Render(ctx)
		if err != nil {
			return fmt.Errorf("summary year %d: %w", y, err)
		}
		if err := wb.SetFormula(SummaryCell(c.col, y), formula, c.role, c.format); err != nil {
			return err
		}
	}
	return nil
}
