package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xyloai/xylo/internal/analysis"
)

const decisionPageSize = 100

type DecisionsModel struct {
	CommonModel
	analysisService *analysis.Service

	table      table.Model
	decisions  []*analysis.Decision
	showDetail bool
	loading    bool
	err        error
}

func NewDecisionsModel(analysisSvc *analysis.Service) DecisionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Invoice", Width: 16},
		{Title: "Vendor", Width: 28},
		{Title: "Amount", Width: 14},
		{Title: "Decision", Width: 14},
		{Title: "Confidence", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DecisionsModel{
		analysisService: analysisSvc,
		table:           t,
		loading:         true,
	}
}

func (m DecisionsModel) Title() string { return "Decision Log" }
func (m DecisionsModel) ShortHelp() string {
	if m.showDetail {
		return "Enter: close detail | Esc: back"
	}

	return "Esc: back | Enter: detail | r: refresh"
}

func (m DecisionsModel) Init() tea.Cmd {
	return m.loadDecisionsCmd()
}

func (m DecisionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDecisionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.decisions = msg.decisions
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.showDetail = false

			return m, m.loadDecisionsCmd()
		case "enter":
			m.showDetail = !m.showDetail
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DecisionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading decisions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.showDetail {
		if d := m.selected(); d != nil {
			panel := lipgloss.NewStyle().
				Padding(1, 2).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Width(56).
				Render(detailView(d))

			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
		}
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m DecisionsModel) selected() *analysis.Decision {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.decisions) {
		return nil
	}

	return m.decisions[idx]
}

func detailView(d *analysis.Decision) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", d.InvoiceNumber, DecisionLabel(d.Outcome))
	fmt.Fprintf(&b, "Vendor: %s\n", d.VendorName)
	fmt.Fprintf(&b, "Amount: %s\n", FormatAmount(d.Amount, d.Currency))
	fmt.Fprintf(&b, "Confidence: %.2f\n\n", d.Confidence)
	fmt.Fprintf(&b, "Reasoning: %s\n", d.Result.Reasoning)

	if len(d.Result.FraudFlags) > 0 {
		b.WriteString("\nFlags:\n")

		for _, f := range d.Result.FraudFlags {
			fmt.Fprintf(&b, "  [%s] %s\n", f.Severity, f.Code)
		}
	}

	fmt.Fprintf(&b, "\nRecommendation: %s", d.Recommendation)

	return b.String()
}

func (m *DecisionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.decisions))
	for _, d := range m.decisions {
		rows = append(rows, table.Row{
			FormatDate(d.CreatedAt),
			d.InvoiceNumber,
			d.VendorName,
			FormatAmount(d.Amount, d.Currency),
			string(d.Outcome),
			fmt.Sprintf("%.2f", d.Confidence),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadDecisionsMsg struct {
	decisions []*analysis.Decision
	err       error
}

func (m DecisionsModel) loadDecisionsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		decisions, err := m.analysisService.Decisions(ctx, decisionPageSize)

		return loadDecisionsMsg{decisions: decisions, err: err}
	}
}
