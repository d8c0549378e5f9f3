package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/ruimartins/billow/cmd/tui/internal/view"
	"github.com/ruimartins/billow/internal/config"
	"github.com/ruimartins/billow/internal/database"
	"github.com/ruimartins/billow/internal/document"
	docStore "github.com/ruimartins/billow/internal/document/store"
	"github.com/ruimartins/billow/internal/i18n"
	"github.com/ruimartins/billow/internal/importer"
	"github.com/ruimartins/billow/internal/status"
)

type model struct {
	documentService *document.Service
	importService   *importer.Service
	engine          *status.Engine

	currentView View

	docsView   view.DocumentsModel
	importView view.ImportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDocuments View = 1
	ViewImport    View = 2
)

// menuEntries maps menu digits to document families.
var menuEntries = []document.Type{
	document.TypeInvoice,
	document.TypeQuote,
	document.TypePayment,
	document.TypeRecurringInvoice,
	document.TypeExpense,
	document.TypeClient,
	document.TypeProduct,
}

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

	store := docStore.New(db)
	docSvc := document.NewService(store, document.ContextNavigator{})
	impSvc := importer.NewService(store, "EUR")
	engine := status.NewEngine(docSvc, i18n.New(cfg.App.Language))

	return model{
		documentService: docSvc,
		importService:   impSvc,
		engine:          engine,
		currentView:     ViewMenu,
		importView:      view.NewImportModel(impSvc),
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
			switch key := msg.String(); key {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1", "2", "3", "4", "5", "6", "7":
				typ := menuEntries[int(key[0]-'1')]

				m.currentView = ViewDocuments
				m.docsView = view.NewDocumentsModel(m.documentService, m.engine, typ)

				return m, m.docsView.Init()
			case "8":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDocuments:
		var newModel tea.Model
		newModel, cmd = m.docsView.Update(msg)
		m.docsView = newModel.(view.DocumentsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Billow TUI\n\n" +
				"1. Invoices\n" +
				"2. Quotes\n" +
				"3. Payments\n" +
				"4. Recurring Invoices\n" +
				"5. Expenses\n" +
				"6. Clients\n" +
				"7. Products\n" +
				"8. Import Expenses\n\n" +
				"q. Quit",
		)
	case ViewDocuments:
		return m.docsView.View()
	case ViewImport:
		return m.importView.View()
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
