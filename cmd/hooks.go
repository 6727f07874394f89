package cmd

import (
	"context"

	"github.com/spf13/cobra"

	m "github.com/awhisler/wdioTest/internal/model"
)

var afterExitCodeFlag int

// prepareCmd represents the prepare command.
var prepareCmd = newPrepareCmd()

// afterCmd represents the after command.
var afterCmd = newAfterCmd()

// completeCmd represents the complete command.
var completeCmd = newCompleteCmd()

func newPrepareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Clear the failed-spec manifest before a run",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Prepare(context.Background())
		},
	}
}

func newAfterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "after [specs...]",
		Short: "Record a finished worker",
		Long: `Record the result of one worker. With a non-zero --exit-code the given spec
files are appended to the failed-spec manifest; with exit code 0 the manifest
file is removed.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.After(context.Background(), m.RunResult{
				ExitCode: afterExitCodeFlag,
				Specs:    args,
			})
		},
	}

	cmd.Flags().IntVarP(&afterExitCodeFlag, exitCodeFlagName, "e", 0, "exit code of the worker")

	return cmd
}

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Generate the report and print the failed specs",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Complete(context.Background())
		},
	}
}

func init() {
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(afterCmd)
	rootCmd.AddCommand(completeCmd)
}
