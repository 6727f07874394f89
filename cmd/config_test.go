package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "wdioreport", configBaseName)
	assert.Equal(t, "wdioreport.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "retries", runRetriesFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "run.retries", runRetriesConfigKey)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "WDIOREPORT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, m.DefaultLayout(), configuredLayout())
	assert.Equal(t, m.DefaultReportOptions(), configuredReportOptions())
	assert.Equal(t, []string{"allure"}, viper.GetStringSlice(reportCommandKey))
	assert.Equal(t, "30s", viper.GetDuration(reportTimeoutKey).String())
	assert.Equal(t, []string{"npx", "wdio", "run", "wdio.conf.js"}, viper.GetStringSlice(runnerCommandKey))
}

func TestParseRetries(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"zero", "0", 0},
		{"number", "2", 2},
		{"padded", " 3 ", 3},
		{"negative", "-1", 0},
		{"decimal", "1.5", 0},
		{"word", "twice", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRetries(tt.value))
		})
	}
}

func TestLoggerEnv(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "WARN")
	t.Setenv("LOGGER_TIMESTAMP", "false")
	t.Setenv("LOGGER_STACK_TRACE", "")
	t.Setenv("NODE_ENV", "production")

	env := loggerEnv()

	assert.Equal(t, logger.Env{Level: "WARN", Timestamp: "false", Production: true}, env)
	assert.Equal(t, logger.LevelWarn, logger.DefaultLevel(env))
	assert.False(t, logger.DefaultTimestamp(env))
	assert.False(t, logger.DefaultStackTrace(env))
}

func TestConfigureLogger_WritesLogFile(t *testing.T) {
	originalLevel := logs.Level()
	originalDefault := slog.Default()
	t.Cleanup(func() {
		logs.SetOutput(os.Stdout)
		logs.SetLevel(originalLevel)
		slog.SetDefault(originalDefault)
	})

	logPath := filepath.Join(t.TempDir(), "wdioreport.log")

	configureLogger(logPath, true)
	slog.Debug("Worker started", "spec", "specs/a.spec.js")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "[wdioreport] DEBUG - ")
	assert.Contains(t, string(contents), `{"spec":"specs/a.spec.js"} Worker started`)
	assert.Equal(t, logger.LevelDebug, logs.Level())
}
