package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"

	m "github.com/awhisler/wdioTest/internal/model"
)

func renderRunSummaryTable(runs []m.SpecRun) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Spec", "Attempts", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	failed := 0

	for _, run := range runs {
		result := "passed"
		if run.ExitCode != 0 {
			result = fmt.Sprintf("failed (exit %d)", run.ExitCode)
			failed++
		}

		table.Append([]string{run.Spec, fmt.Sprintf("%d", run.Attempts), result})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Specs %d", len(runs)),
		"",
		fmt.Sprintf("%d failed", failed),
	})

	table.Render()

	return tableBuffer.String()
}

func renderResultsTable(results []m.TestResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Test", "Status", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	counts := map[m.Status]int{}

	for _, result := range results {
		counts[result.Status]++

		duration := time.Duration(result.Stop-result.Start) * time.Millisecond
		table.Append([]string{result.FullName, string(result.Status), duration.String()})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Tests %d", len(results)),
		statusSummary(counts),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func statusSummary(counts map[m.Status]int) string {
	return fmt.Sprintf("%d passed, %d failed, %d broken, %d skipped",
		counts[m.StatusPassed], counts[m.StatusFailed], counts[m.StatusBroken], counts[m.StatusSkipped])
}
