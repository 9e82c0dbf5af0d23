package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/xyloai/xylo/cmd/tui/internal/view"
	"github.com/xyloai/xylo/internal/analysis"
	analysisStore "github.com/xyloai/xylo/internal/analysis/store"
	"github.com/xyloai/xylo/internal/config"
	"github.com/xyloai/xylo/internal/database"
	"github.com/xyloai/xylo/internal/erp"
	erpStore "github.com/xyloai/xylo/internal/erp/store"
	"github.com/xyloai/xylo/internal/ingest"
	"github.com/xyloai/xylo/internal/risk"
	"github.com/xyloai/xylo/internal/screening"
)

type model struct {
	analysisService *analysis.Service

	currentView View

	analyzeView   view.AnalyzeModel
	decisionsView view.DecisionsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewAnalyze   View = 1
	ViewDecisions View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	decisionStore := analysisStore.New(db)

	erpSvc := erp.NewService(erpStore.New(db))
	screeningSvc := screening.NewService(erpSvc, decisionStore)
	engine := risk.NewEngine(cfg.Risk.ApprovedThreshold, cfg.Risk.ReviewThreshold)
	ingestSvc := ingest.NewService(cfg.OCR.Languages)
	analysisSvc := analysis.NewService(ingestSvc, screeningSvc, engine, decisionStore)

	return model{
		analysisService: analysisSvc,
		currentView:     ViewMenu,
		analyzeView:     view.NewAnalyzeModel(analysisSvc),
		decisionsView:   view.NewDecisionsModel(analysisSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAnalyze
				m.analyzeView = view.NewAnalyzeModel(m.analysisService)

				return m, m.analyzeView.Init()
			case "2":
				m.currentView = ViewDecisions
				m.decisionsView = view.NewDecisionsModel(m.analysisService)

				return m, m.decisionsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAnalyze:
		var newModel tea.Model
		newModel, cmd = m.analyzeView.Update(msg)
		m.analyzeView = newModel.(view.AnalyzeModel)
	case ViewDecisions:
		var newModel tea.Model
		newModel, cmd = m.decisionsView.Update(msg)
		m.decisionsView = newModel.(view.DecisionsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Xylo TUI\n\n" +
				"1. Analyze Invoice\n" +
				"2. Decision Log\n\n" +
				"q. Quit",
		)
	case ViewAnalyze:
		return m.analyzeView.View()
	case ViewDecisions:
		return m.decisionsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
