package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// Layout groups the directories the reporting lifecycle works with.
type Layout struct {
	// Results is the per-run results directory consumed by the report generator.
	Results Path
	// Reports is the accumulated report output, read back for history.
	Reports Path
	// FailedTests holds the failure manifest between prepare and complete.
	FailedTests Path
	// Categories is the source of the custom categories definition.
	Categories Path
}

// Default locations, relative to the working directory.
const (
	DefaultResultsDir     Path = "./function/service/reports/allure-results"
	DefaultReportsDir     Path = "./function/service/reports/allure-reports"
	DefaultFailedTestsDir Path = "./function/service/reports/failed-tests"
	DefaultCategoriesFile Path = "./function/service/allure-categories.json"
)

// DefaultLayout returns the layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{
		Results:     DefaultResultsDir,
		Reports:     DefaultReportsDir,
		FailedTests: DefaultFailedTestsDir,
		Categories:  DefaultCategoriesFile,
	}
}

// ManifestFile is the failure manifest inside Layout.FailedTests.
func (l Layout) ManifestFile() Path {
	return l.FailedTests.Join(ManifestFileName)
}

// ResultsHistory is the history folder the generator reads trends from.
func (l Layout) ResultsHistory() Path {
	return l.Results.Join(HistoryDirName)
}

// ReportsHistory is the history folder written by the previous generation.
func (l Layout) ReportsHistory() Path {
	return l.Reports.Join(HistoryDirName)
}

const (
	// ManifestFileName is the name of the failure manifest.
	ManifestFileName = "tests.txt"
	// CategoriesFileName is the categories file expected in the results directory.
	CategoriesFileName = "categories.json"
	// HistoryDirName is the trend folder name on both sides of the carry-over.
	HistoryDirName = "history"
)

// HistoryFiles lists the trend files carried over between report generations.
var HistoryFiles = []string{
	"categories-trend.json",
	"duration-trend.json",
	"history-trend.json",
	"history.json",
	"retry-trend.json",
}
