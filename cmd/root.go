// Package cmd provides the root command and CLI setup for wdioreport.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/awhisler/wdioTest/internal/adapter"
	"github.com/awhisler/wdioTest/internal/controller"
	"github.com/awhisler/wdioTest/internal/domain"
	"github.com/awhisler/wdioTest/internal/logger"
)

var logs *logger.Config
var reportFSAdapter adapter.ReportFSAdapter
var manifestStore adapter.ManifestStore
var resultStore adapter.ResultStore
var reportGenerator adapter.ReportGenerator
var testAdapter adapter.TestRunnerAdapter
var coordinator domain.Coordinator
var workflow domain.Workflow
var ui controller.UI

// logFileFlag is a root-level flag adding a rotating log file next to stdout.
var logFileFlag string

// verboseFlag forces debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	logs = logger.NewConfigFromEnv(loggerEnv())
	layout := configuredLayout()

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportFSAdapter = adapter.NewLocalReportFSAdapter()
	manifestStore = adapter.NewFileManifestStore(layout.FailedTests)
	resultStore = adapter.NewFileResultStore(layout.Results)
	reportGenerator = adapter.NewLocalReportGenerator(
		viper.GetStringSlice(reportCommandKey),
		viper.GetDuration(reportTimeoutKey),
	)
	testAdapter = adapter.NewLocalTestRunnerAdapter(
		viper.GetStringSlice(runnerCommandKey),
		viper.GetString(runnerSpecFlagKey),
	)
	coordinator = domain.NewCoordinator(
		reportFSAdapter,
		manifestStore,
		reportGenerator,
		logs.New("AllureService", nil),
		layout,
		configuredReportOptions(),
	)
	workflow = domain.NewWorkflow(
		testAdapter,
		resultStore,
		manifestStore,
		coordinator,
		ui,
		logs,
		domain.WorkflowOptions{
			Reporter: configuredReporterOptions(),
			Sessions: adapter.NewChromeSession,
		},
	)
}

const rootLongDescription = `wdioreport wraps a WebdriverIO test run with an Allure reporting lifecycle.

It clears the failed-spec manifest before the run, records the spec files of
failing workers, carries report history over between runs, generates the Allure
report when the run completes and prints the specs that failed.

The lifecycle hooks can be driven one by one (prepare, after, complete) by a
runner that calls them itself, or all at once through run.`

const runLongDescription = `Run the given spec files through the test runner and report them.

Every spec file runs in its own worker. A failing worker re-runs its spec up to
--retries more times (the rerun environment variable works too) before its
result is recorded.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wdioreport",
		Short: "Allure reporting lifecycle for WebdriverIO runs",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "also write logs to this file, rotated")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// exitCodeError carries a test run's non-zero exit code out of Execute.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("test run failed with exit code %d", e.code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}

	os.Exit(1)
}
