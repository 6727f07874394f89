package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "github.com/awhisler/wdioTest/internal/model"
)

const pagerFooterHeight = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// TUI implements UI using Bubble Tea to page long output.
type TUI struct {
	output io.Writer
	size   func() (int, int)
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		size: func() (int, int) {
			f, ok := output.(*os.File)
			if !ok {
				return 0, 0
			}

			width, height, err := term.GetSize(f.Fd())
			if err != nil {
				return 0, 0
			}

			return width, height
		},
	}
}

// DisplayRunSummary shows one row per spec file.
func (p *TUI) DisplayRunSummary(ctx context.Context, runs []m.SpecRun) error {
	return p.show(ctx, "Run summary", renderRunSummaryTable(runs))
}

// DisplayResults shows one row per test result.
func (p *TUI) DisplayResults(ctx context.Context, results []m.TestResult) error {
	if len(results) == 0 {
		return p.show(ctx, "Results", "  No test results found\n")
	}

	return p.show(ctx, "Results", renderResultsTable(results))
}

// DisplayFailedSpecs lists the spec files recorded in the failure manifest.
func (p *TUI) DisplayFailedSpecs(ctx context.Context, specs []string) error {
	if len(specs) == 0 {
		return nil
	}

	var b strings.Builder
	for _, spec := range specs {
		fmt.Fprintf(&b, "  %s\n", failedStyle.Render(spec))
	}

	return p.show(ctx, "Failed specs", b.String())
}

func (p *TUI) show(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := titleStyle.Render("wdioreport · "+title) + "\n\n" + body

	width, height := p.size()
	if height == 0 || strings.Count(content, "\n")+pagerFooterHeight <= height {
		_, err := fmt.Fprint(p.output, content)
		return err
	}

	program := tea.NewProgram(
		newPagerModel(content, width, height),
		tea.WithOutput(p.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := program.Run()

	return err
}

// pagerModel scrolls content that does not fit the terminal.
type pagerModel struct {
	viewport viewport.Model
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, height-pagerFooterHeight)
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = msg.Height - pagerFooterHeight

		return pm, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := footerStyle.Render(fmt.Sprintf("%3.f%% | ↑/k up | ↓/j down | q quit", pm.viewport.ScrollPercent()*100))
	return pm.viewport.View() + "\n\n" + footer
}
