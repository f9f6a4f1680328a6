package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javajack/xlmortgage"
)

func workbookArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return xlmortgage.DefaultFileName
}

func newValidateCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a generated workbook's formula structure",
		Long: `Re-open a calculator workbook and check sheet order, literal inputs, the
schedule's balance chain and the summary's references into the schedule.
Exits 1 when any error-severity issue is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := workbookArg(args)

			issues, err := xlmortgage.Validate(path)
			if err != nil {
				return err
			}
			for _, is := range issues {
				fmt.Fprintln(stdout, is)
			}
			if xlmortgage.HasErrors(issues) {
				return &ExitError{Code: 1}
			}
			if len(issues) == 0 {
				fmt.Fprintf(stdout, "%s: OK\n", path)
			}
			return nil
		},
	}
}

func newDescribeCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file]",
		Short: "Print an outline of a generated workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			out, err := xlmortgage.Describe(workbookArg(args))
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, out)
			return nil
		},
	}
}
