package xlmortgage

import (
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"
)

// Options holds configuration for the Generator.
type Options struct {
	inputs            LoanInputs
	outputPath        string
	recalculateOnOpen bool
	preWrite          func(*excelize.File) error
	logger            *slog.Logger
}

func defaultOptions() *Options {
	return &Options{
		inputs:            DefaultInputs(),
		outputPath:        DefaultFileName,
		recalculateOnOpen: true,
		logger:            slog.New(slog.DiscardHandler),
	}
}

// Option configures the Generator.
type Option func(*Options)

// WithInputs replaces all four loan inputs.
func WithInputs(in LoanInputs) Option {
	return func(o *Options) { o.inputs = in }
}

// WithLoanAmount sets the loan amount input.
func WithLoanAmount(amount float64) Option {
	return func(o *Options) { o.inputs.Amount = amount }
}

// WithAnnualRate sets the annual interest rate input, as a decimal.
func WithAnnualRate(rate float64) Option {
	return func(o *Options) { o.inputs.AnnualRate = rate }
}

// WithTermYears sets the loan term input.
func WithTermYears(years int) Option {
	return func(o *Options) { o.inputs.TermYears = years }
}

// WithStartDate sets the start date input.
func WithStartDate(date time.Time) Option {
	return func(o *Options) { o.inputs.StartDate = date }
}

// WithOutputPath sets the file written by Save when no path is given (default: DefaultFileName).
func WithOutputPath(path string) Option {
	return func(o *Options) { o.outputPath = path }
}

// WithRecalculateOnOpen controls whether the spreadsheet application is told
// to recalculate every formula on open (default: true).
func WithRecalculateOnOpen(recalc bool) Option {
	return func(o *Options) { o.recalculateOnOpen = recalc }
}

// WithPreWrite sets a callback executed on the finished workbook before it is written.
func WithPreWrite(fn func(*excelize.File) error) Option {
	return func(o *Options) { o.preWrite = fn }
}

// WithLogger sets the logger used for build progress at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
