package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/awhisler/wdioTest/internal/domain"
)

var viewFailedFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the results of the last run",
		Long:  "View the test results and failed spec files of the last run from the results directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(context.Background(), domain.ViewArgs{FailedOnly: viewFailedFlag})
		},
	}

	cmd.Flags().BoolVar(&viewFailedFlag, failedFlagName, false, "only show failed and broken tests")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
