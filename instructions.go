package xlmortgage

// InstructionLine is one line of the instructions sheet, written to column B.
type InstructionLine struct {
	Row  int
	Text string
	Role CellRole
	Link *CellRef // optional jump target
}

var summaryLink = CellAt(SummarySheet, "B", 2)

// InstructionLines is the fixed text of the instructions sheet.
var InstructionLines = []InstructionLine{
	{2, "HOW TO USE THIS MORTGAGE CALCULATOR", RoleSheetTitle, nil},
	{4, "1. ENTER YOUR LOAN DETAILS:", RoleInstructionHead, nil},
	{5, "   - Loan Amount: The total amount you're borrowing (e.g., $300,000)", RoleText, nil},
	{6, "   - Annual Interest Rate: Enter as decimal (e.g., 6.5% = 0.065)", RoleText, nil},
	{7, "   - Loan Term: Number of years (typically 15 or 30)", RoleText, nil},
	{8, "   - Start Date: When your first payment begins", RoleText, nil},
	{10, "2. VIEW YOUR RESULTS:", RoleInstructionHead, nil},
	{11, "   - Monthly Payment: Your fixed monthly payment amount", RoleText, nil},
	{12, "   - Total Interest: How much interest you'll pay over the loan life", RoleText, nil},
	{14, "3. AMORTIZATION SCHEDULE:", RoleInstructionHead, nil},
	{15, "   - Shows each monthly payment broken into principal and interest", RoleText, nil},
	{16, "   - Extra Payment column: Add extra payments to see how it affects payoff", RoleText, nil},
	{18, "4. YEARLY SUMMARY:", RoleInstructionHead, nil},
	{19, "   - See the 'Yearly Summary' tab for annual totals", RoleText, &summaryLink},
	{21, "TIPS:", RoleInstructionTip, nil},
	{22, "   - Blue cells are INPUT cells - you can modify these values", RoleText, nil},
	{23, "   - Green cells show CALCULATED results", RoleText, nil},
	{24, "   - Add extra payments to pay off your mortgage faster!", RoleText, nil},
}

func buildInstructionsSheet(wb *Workbook) error {
	for _, line := range InstructionLines {
		var value any = line.Text
		if line.Link != nil {
			value = Hyperlink(*line.Link, line.Text)
		}
		if err := wb.SetValue(CellAt(InstructionsSheet, "B", line.Row), value, line.Role, FmtGeneral); err != nil {
			return err
		}
	}
	return nil
}
