package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/awhisler/wdioTest/internal/domain"
	m "github.com/awhisler/wdioTest/internal/model"
)

var runParallelFlag int
var runRetriesFlag int
var runBrowserFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "run <specs...>",
		Short:        "Run spec files and report them",
		Long:         runLongDescription,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			code, err := workflow.Run(ctx, domain.RunArgs{
				Specs:        args,
				Parallel:     viper.GetInt(runParallelConfigKey),
				Retries:      parseRetries(viper.GetString(runRetriesConfigKey)),
				Capabilities: m.Capabilities{"browserName": viper.GetString(runBrowserConfigKey)},
			})
			if err != nil {
				return err
			}

			if code != 0 {
				return &exitCodeError{code: code}
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of spec files run at the same time")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().IntVarP(&runRetriesFlag, runRetriesFlagName, "r", parseRetries(viper.GetString(runRetriesConfigKey)), "re-run a failing spec file up to this many times")
	bindFlagToConfig(cmd.Flags().Lookup(runRetriesFlagName), runRetriesConfigKey)

	cmd.Flags().StringVarP(&runBrowserFlag, runBrowserFlagName, "b", viper.GetString(runBrowserConfigKey), "browser name reported for the run")
	bindFlagToConfig(cmd.Flags().Lookup(runBrowserFlagName), runBrowserConfigKey)
}
