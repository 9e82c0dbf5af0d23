package view

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/xyloai/xylo/internal/analysis"
	"github.com/xyloai/xylo/internal/risk"
)

type analyzeState int

const (
	analyzeStateForm analyzeState = iota
	analyzeStateRunning
	analyzeStateResult
)

type AnalyzeModel struct {
	CommonModel
	analysisService *analysis.Service

	state  analyzeState
	form   *huh.Form
	result risk.Result
	err    error

	// Form bindings
	formPath string
	formText string
}

func NewAnalyzeModel(analysisSvc *analysis.Service) AnalyzeModel {
	m := AnalyzeModel{analysisService: analysisSvc}
	m.form = m.newForm()

	return m
}

func (m AnalyzeModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Document path").
				Placeholder("invoices/INV-2024-100.pdf (leave empty to paste text)").
				Value(&m.formPath),

			huh.NewText().
				Key("raw_text").
				Title("Raw invoice text").
				Value(&m.formText),
		),
	).WithWidth(70).WithShowHelp(false)
}

func (m AnalyzeModel) Title() string { return "Analyze Invoice" }
func (m AnalyzeModel) ShortHelp() string {
	switch m.state {
	case analyzeStateResult:
		return "a: analyze another | Esc: back"
	default:
		return "Navigate form | Esc: back"
	}
}

func (m AnalyzeModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AnalyzeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzeDoneMsg:
		m.state = analyzeStateResult
		m.result = msg.result
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == analyzeStateResult && msg.String() == "a" {
			m.state = analyzeStateForm
			m.formPath = ""
			m.formText = ""
			m.form = m.newForm()

			return m, m.form.Init()
		}
	}

	if m.state != analyzeStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = analyzeStateRunning
	m.formPath = m.form.GetString("path")
	m.formText = m.form.GetString("raw_text")

	return m, m.analyzeCmd()
}

func (m AnalyzeModel) View() string {
	switch m.state {
	case analyzeStateRunning:
		return lipgloss.NewStyle().Padding(2).Render("Analyzing invoice...")

	case analyzeStateResult:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
		}

		return lipgloss.NewStyle().Padding(1).Render(m.resultView())

	default:
		return lipgloss.NewStyle().Padding(1).Render(
			"Analyze Invoice\n\n" + m.form.View(),
		)
	}
}

func (m AnalyzeModel) resultView() string {
	inv := m.result.ProcessedInvoice

	var b strings.Builder

	fmt.Fprintf(&b, "Decision: %s  (confidence %.2f)\n\n", DecisionLabel(m.result.Decision), m.result.ConfidenceScore)
	fmt.Fprintf(&b, "Vendor:  %s\n", inv.VendorName)
	fmt.Fprintf(&b, "Invoice: %s\n", inv.InvoiceNumber)
	fmt.Fprintf(&b, "Amount:  %s\n\n", FormatAmount(inv.Amount, inv.Currency))
	fmt.Fprintf(&b, "Reasoning: %s\n", m.result.Reasoning)

	if len(m.result.FraudFlags) > 0 {
		b.WriteString("\nFlags:\n")

		for _, f := range m.result.FraudFlags {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", f.Severity, f.Code, f.Description)
		}
	}

	if len(m.result.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")

		for _, s := range m.result.Suggestions {
			fmt.Fprintf(&b, "  %s %s: %s\n", s.Icon, s.Title, s.Detail)
		}
	}

	fmt.Fprintf(&b, "\nRecommendation: %s", m.result.Recommendation)

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())
}

// Messages

type analyzeDoneMsg struct {
	result risk.Result
	err    error
}

func (m AnalyzeModel) analyzeCmd() tea.Cmd {
	path := strings.TrimSpace(m.formPath)
	rawText := m.formText

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return analyzeDoneMsg{err: fmt.Errorf("reading %s: %w", path, err)}
			}

			result, err := m.analysisService.AnalyzeDocument(ctx, path, data)

			return analyzeDoneMsg{result: result, err: err}
		}

		if strings.TrimSpace(rawText) == "" {
			return analyzeDoneMsg{err: fmt.Errorf("provide a document path or paste invoice text")}
		}

		result, err := m.analysisService.AnalyzeText(ctx, rawText)

		return analyzeDoneMsg{result: result, err: err}
	}
}
