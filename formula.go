package xlmortgage

import (
	"fmt"
	"strings"

	"github.com/xuri/efp"
)

// FormulaTemplate is formula text with embedded ${...} expressions that are
// rendered against a Context. The result carries no leading "=".
type FormulaTemplate string

// Render expands the template with the variables in ctx.
func (t FormulaTemplate) Render(ctx *Context) (string, error) {
	return ctx.Render(string(t))
}

// Results block. Variables: amount, rate, term, payment, payments, totalPaid, totalInterest.
const (
	MonthlyPaymentFormula FormulaTemplate = `-PMT(${rate}/12, ${term}*12, ${amount})`
	TotalPaymentsFormula  FormulaTemplate = `${term}*12`
	TotalPaidFormula      FormulaTemplate = `${payment}*${payments}`
	TotalInterestFormula  FormulaTemplate = `${totalPaid}-${amount}`
	InterestRatioFormula  FormulaTemplate = `${totalInterest}/${amount}`
)

// Amortization schedule, one row per payment i. prevBalance is the balance
// cell of the previous row, or the loan amount input for i = 1.
const (
	PaymentNumberFormula FormulaTemplate = `IF(${i}<=${anchored.term}*12, ${i}, "")`
	PaymentDateFormula   FormulaTemplate = `IF(${num}<>"", EDATE(${anchored.start}, ${i}-1), "")`
	PaymentFormula       FormulaTemplate = `IF(${num}<>"", ${anchored.payment}, "")`
	PrincipalFormula     FormulaTemplate = `IF(${num}<>"", ${anchored.payment}-(${prevBalance}*${anchored.rate}/12), "")`
	InterestFormula      FormulaTemplate = `IF(${num}<>"", ${prevBalance}*${anchored.rate}/12, "")`
	BalanceFormula       FormulaTemplate = `IF(${num}<>"", MAX(0, ${prevBalance}-${principal}-${extra}), "")`
)

// Yearly summary, one row per year. firstPayment and lastPayment bound the
// year's payment numbers.
const (
	SummaryYearFormula      FormulaTemplate = `IF(${year}<=${calc.term}, ${year}, "")`
	SummaryPrincipalFormula FormulaTemplate = `IF(${yearCell}<>"", SUMPRODUCT((${calc.numbers}>=${firstPayment})*(${calc.numbers}<=${lastPayment})*(${calc.principal})), "")`
	SummaryInterestFormula  FormulaTemplate = `IF(${yearCell}<>"", SUMPRODUCT((${calc.numbers}>=${firstPayment})*(${calc.numbers}<=${lastPayment})*(${calc.interest})), "")`
	SummaryTotalFormula     FormulaTemplate = `IF(${yearCell}<>"", ${principalCell}+${interestCell}, "")`
	SummaryBalanceFormula   FormulaTemplate = `IF(${yearCell}<>"", ${endBalance}, "")`
)

// FormulaFunctionSet is the set of spreadsheet functions generated formulas may use.
var FormulaFunctionSet = map[string]bool{
	"PMT":        true,
	"EDATE":      true,
	"SUMPRODUCT": true,
	"IF":         true,
	"MAX":        true,
}

// newFormulaContext returns a Context preloaded with the fixed input and
// result addresses every template refers to.
func newFormulaContext() *Context {
	return NewContext(map[string]any{
		"amount":        LoanAmountCell.CellName(),
		"rate":          AnnualRateCell.CellName(),
		"term":          TermYearsCell.CellName(),
		"start":         StartDateCell.CellName(),
		"payment":       MonthlyPaymentCell.CellName(),
		"payments":      TotalPaymentsCell.CellName(),
		"totalPaid":     TotalPaidCell.CellName(),
		"totalInterest": TotalInterestCell.CellName(),
		"anchored": map[string]any{
			"amount":  LoanAmountCell.AbsRow(),
			"rate":    AnnualRateCell.AbsRow(),
			"term":    TermYearsCell.AbsRow(),
			"start":   StartDateCell.AbsRow(),
			"payment": MonthlyPaymentCell.AbsRow(),
		},
		"calc": map[string]any{
			"term":      TermYearsCell.QualifiedAbsRow(),
			"numbers":   ScheduleColumn(ColPaymentNumber).QualifiedAbsRows(),
			"principal": ScheduleColumn(ColPrincipal).QualifiedAbsRows(),
			"interest":  ScheduleColumn(ColInterest).QualifiedAbsRows(),
		},
	})
}

// FormulaRef is a cell or range reference found in a formula.
type FormulaRef struct {
	Text string  // reference as tokenized, without quotes
	Area AreaRef // resolved area; single cells have First == Last
}

// FormulaInfo is the tokenized view of a formula.
type FormulaInfo struct {
	Refs      []FormulaRef
	Functions []string
	Problems  []string
}

// AnalyzeFormula tokenizes a formula with the efp parser and collects its
// references, function names, and anything the tokenizer could not classify.
// References without a sheet prefix are resolved against defaultSheet.
func AnalyzeFormula(formula, defaultSheet string) FormulaInfo {
	var info FormulaInfo
	ps := efp.ExcelParser()
	tokens := ps.Parse(formula)
	if len(tokens) == 0 {
		info.Problems = append(info.Problems, "empty formula")
		return info
	}

	depth := 0
	for _, token := range tokens {
		switch token.TType {
		case efp.TokenTypeFunction:
			if token.TSubType == efp.TokenSubTypeStart {
				depth++
				info.Functions = append(info.Functions, strings.ToUpper(token.TValue))
			} else if token.TSubType == efp.TokenSubTypeStop {
				depth--
			}
		case efp.TokenTypeSubexpression:
			if token.TSubType == efp.TokenSubTypeStart {
				depth++
			} else if token.TSubType == efp.TokenSubTypeStop {
				depth--
			}
		case efp.TokenTypeUnknown:
			info.Problems = append(info.Problems, fmt.Sprintf("unrecognized token %q", token.TValue))
		case efp.TokenTypeOperand:
			if token.TSubType != efp.TokenSubTypeRange {
				continue
			}
			area, err := ParseAreaRef(token.TValue)
			if err != nil {
				info.Problems = append(info.Problems, fmt.Sprintf("bad reference %q", token.TValue))
				continue
			}
			if area.First.Sheet == "" {
				area.First.Sheet = defaultSheet
				area.Last.Sheet = defaultSheet
			}
			info.Refs = append(info.Refs, FormulaRef{Text: token.TValue, Area: area})
		}
		if depth < 0 {
			info.Problems = append(info.Problems, "unbalanced parentheses")
			depth = 0
		}
	}
	if depth != 0 {
		info.Problems = append(info.Problems, "unbalanced parentheses")
	}
	return info
}

// References reports whether the formula refers to ref, either directly or
// through a range containing it.
func (fi FormulaInfo) References(ref CellRef) bool {
	for _, r := range fi.Refs {
		if r.Area.Contains(ref) {
			return true
		}
	}
	return false
}

// CellRefs returns the single-cell references of the formula, in order.
func (fi FormulaInfo) CellRefs() []CellRef {
	var out []CellRef
	for _, r := range fi.Refs {
		if r.Area.IsCell() {
			out = append(out, r.Area.First)
		}
	}
	return out
}

// UnknownFunctions returns functions not in FormulaFunctionSet.
func (fi FormulaInfo) UnknownFunctions() []string {
	var out []string
	for _, fn := range fi.Functions {
		if !FormulaFunctionSet[fn] {
			out = append(out, fn)
		}
	}
	return out
}
