package xlmortgage

import "time"

// DateLayout is the layout of start dates in config files and flags.
const DateLayout = "2006-01-02"

// LoanInputs holds the literal values written into the input block.
// Everything else in the workbook is derived from these by formulas.
type LoanInputs struct {
	Amount     float64   // principal borrowed
	AnnualRate float64   // annual rate as a decimal, 0.065 = 6.5%
	TermYears  int       // loan term in years
	StartDate  time.Time // date of the first payment
}

// DefaultInputs returns the inputs used when none are configured.
func DefaultInputs() LoanInputs {
	return LoanInputs{
		Amount:     300000,
		AnnualRate: 0.065,
		TermYears:  30,
		StartDate:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}
