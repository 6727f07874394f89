package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/awhisler/wdioTest/internal/adapter"
	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
	"github.com/awhisler/wdioTest/internal/reporter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "wdioreport"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "WDIOREPORT"

	runParallelFlagName = "parallel"
	runRetriesFlagName  = "retries"
	runBrowserFlagName  = "browser"
	exitCodeFlagName    = "exit-code"
	failedFlagName      = "failed"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"

	resultsDirKey     = "paths.results"
	reportsDirKey     = "paths.reports"
	failedTestsDirKey = "paths.failed_tests"
	categoriesKey     = "paths.categories"

	saveHistoryKey   = "report.save_history"
	autoGenerateKey  = "report.auto_generate"
	reportCommandKey = "report.command"
	reportTimeoutKey = "report.timeout"

	consoleLogsKey       = "reporter.console_logs"
	issueLinkTemplateKey = "reporter.issue_link_template"

	runnerCommandKey  = "runner.command"
	runnerSpecFlagKey = "runner.spec_flag"

	runParallelConfigKey = "run.parallel"
	runRetriesConfigKey  = "run.retries"
	runBrowserConfigKey  = "run.browser"

	loggerLevelKey      = "logger.level"
	loggerTimestampKey  = "logger.timestamp"
	loggerStackTraceKey = "logger.stack_trace"
	nodeEnvKey          = "node_env"

	defaultRunParallel = 1
	defaultRunBrowser  = "chrome"
	defaultSpecFlag    = "--spec"

	logFilenameKey   = "log.filename"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true

	productionEnv = "production"
)

var defaultReportCommand = []string{"allure"}

var defaultRunnerCommand = []string{"npx", "wdio", "run", "wdio.conf.js"}

var retriesPattern = regexp.MustCompile(`^\d+$`)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// The logger and retry variables keep the names the test suite already exports.
	bindEnv(loggerLevelKey, "LOGGER_LEVEL")
	bindEnv(loggerTimestampKey, "LOGGER_TIMESTAMP")
	bindEnv(loggerStackTraceKey, "LOGGER_STACK_TRACE")
	bindEnv(nodeEnvKey, "NODE_ENV")
	bindEnv(runRetriesConfigKey, "WDIOREPORT_RUN_RETRIES", "rerun")

	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(resultsDirKey, string(m.DefaultResultsDir))
	viper.SetDefault(reportsDirKey, string(m.DefaultReportsDir))
	viper.SetDefault(failedTestsDirKey, string(m.DefaultFailedTestsDir))
	viper.SetDefault(categoriesKey, string(m.DefaultCategoriesFile))

	defaults := m.DefaultReportOptions()
	viper.SetDefault(saveHistoryKey, defaults.SaveHistory)
	viper.SetDefault(autoGenerateKey, defaults.AutoGenerateOnComplete)
	viper.SetDefault(reportCommandKey, defaultReportCommand)
	viper.SetDefault(reportTimeoutKey, adapter.DefaultGenerationTimeout.String())

	viper.SetDefault(consoleLogsKey, false)
	viper.SetDefault(issueLinkTemplateKey, "")

	viper.SetDefault(runnerCommandKey, defaultRunnerCommand)
	viper.SetDefault(runnerSpecFlagKey, defaultSpecFlag)

	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runRetriesConfigKey, "0")
	viper.SetDefault(runBrowserConfigKey, defaultRunBrowser)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, "")
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func bindEnv(key string, names ...string) {
	cobra.CheckErr(viper.BindEnv(append([]string{key}, names...)...))
}

// parseRetries accepts a plain non-negative number; anything else disables retries.
func parseRetries(value string) int {
	value = strings.TrimSpace(value)
	if !retriesPattern.MatchString(value) {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return n
}

func loggerEnv() logger.Env {
	return logger.Env{
		Level:      viper.GetString(loggerLevelKey),
		Timestamp:  viper.GetString(loggerTimestampKey),
		StackTrace: viper.GetString(loggerStackTraceKey),
		Production: viper.GetString(nodeEnvKey) == productionEnv,
	}
}

func configuredLayout() m.Layout {
	return m.Layout{
		Results:     m.Path(viper.GetString(resultsDirKey)),
		Reports:     m.Path(viper.GetString(reportsDirKey)),
		FailedTests: m.Path(viper.GetString(failedTestsDirKey)),
		Categories:  m.Path(viper.GetString(categoriesKey)),
	}
}

func configuredReportOptions() m.ReportOptions {
	return m.ReportOptions{
		SaveHistory:            viper.GetBool(saveHistoryKey),
		AutoGenerateOnComplete: viper.GetBool(autoGenerateKey),
	}
}

func configuredReporterOptions() reporter.Options {
	return reporter.Options{
		AddConsoleLogs:    viper.GetBool(consoleLogsKey),
		IssueLinkTemplate: viper.GetString(issueLinkTemplateKey),
	}
}

// configureLogger points the shared logger config at stdout, plus a rotating
// file when one is configured, and routes slog through it.
//
// verbose forces the DEBUG level.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if verbose {
		logs.SetLevel(logger.LevelDebug)
	}

	var out io.Writer = os.Stdout

	if strings.TrimSpace(logPath) != "" {
		logWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}

		out = io.MultiWriter(os.Stdout, logWriter)
	}

	logs.SetOutput(out)

	globalLogger = logs.New(configBaseName, nil).Slog()
	slog.SetDefault(globalLogger)
}
