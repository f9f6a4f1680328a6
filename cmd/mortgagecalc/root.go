package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/javajack/xlmortgage"
	"github.com/javajack/xlmortgage/config"
)

type rootFlags struct {
	output     string
	configPath string
	amount     float64
	rate       float64
	term       int
	start      string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "mortgagecalc",
		Short: "Generate a mortgage payment calculator workbook",
		Long: `mortgagecalc writes an .xlsx workbook with a loan calculator, a 360-row
amortization schedule and a yearly summary. Every derived cell is a live
formula, so editing the inputs in a spreadsheet application recomputes
the whole workbook.

Examples:
  mortgagecalc                                  # Mortgage_Payment_Calculator.xlsx with defaults
  mortgagecalc --amount 450000 --rate 0.0575 --term 15
  mortgagecalc --config loan.yaml -o loan.xlsx`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runGenerate(cmd, &flags, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "Output file (default: "+xlmortgage.DefaultFileName+")")
	f.StringVar(&flags.configPath, "config", "", "YAML file with loan inputs")
	f.Float64Var(&flags.amount, "amount", 0, "Loan amount")
	f.Float64Var(&flags.rate, "rate", 0, "Annual interest rate as a decimal (0.065 = 6.5%)")
	f.IntVar(&flags.term, "term", 0, "Loan term in years")
	f.StringVar(&flags.start, "start", "", "Start date, YYYY-MM-DD")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log build progress to stderr")

	cmd.AddCommand(newValidateCmd(stdout), newDescribeCmd(stdout))
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// generatorOptions layers defaults, the config file and explicitly set flags.
func generatorOptions(cmd *cobra.Command, flags *rootFlags) ([]xlmortgage.Option, error) {
	var opts []xlmortgage.Option
	if flags.configPath != "" {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfgOpts, err := cfg.Options()
		if err != nil {
			return nil, fmt.Errorf("config %q: %w", flags.configPath, err)
		}
		opts = append(opts, cfgOpts...)
	}

	set := cmd.Flags().Changed
	if set("amount") {
		opts = append(opts, xlmortgage.WithLoanAmount(flags.amount))
	}
	if set("rate") {
		opts = append(opts, xlmortgage.WithAnnualRate(flags.rate))
	}
	if set("term") {
		opts = append(opts, xlmortgage.WithTermYears(flags.term))
	}
	if set("start") {
		d, err := time.Parse(xlmortgage.DateLayout, flags.start)
		if err != nil {
			return nil, fmt.Errorf("--start %q: %w", flags.start, err)
		}
		opts = append(opts, xlmortgage.WithStartDate(d))
	}
	if set("output") {
		opts = append(opts, xlmortgage.WithOutputPath(flags.output))
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, stdout, stderr io.Writer) error {
	log := newLogger(stderr, flags.verbose)

	opts, err := generatorOptions(cmd, flags)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return &ExitError{Code: 1}
	}
	opts = append(opts, xlmortgage.WithLogger(log))

	g := xlmortgage.NewGenerator(opts...)
	in := g.Inputs()
	log.Debug("generating workbook",
		"amount", in.Amount,
		"rate", in.AnnualRate,
		"term", in.TermYears,
		"start", in.StartDate.Format(xlmortgage.DateLayout),
		"path", g.OutputPath())

	path, err := g.Save("")
	if err != nil {
		log.Error("generation failed", "err", err)
		return &ExitError{Code: 1}
	}
	fmt.Fprintf(stdout, "Successfully created: %s\n", path)
	return nil
}
