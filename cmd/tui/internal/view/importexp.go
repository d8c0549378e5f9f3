package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

// ImportModel drives the expense import flow: pick a CSV export, feed
// it through the importer, show what was created and what was skipped
// as a duplicate.
type ImportModel struct {
	CommonModel
	importService *importer.Service

	state      importState
	filePicker filepicker.Model

	result *importer.Result
	status string
	err    error
}

func NewImportModel(impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService: impSvc,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Expenses" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case expenseImportMsg:
		m.state = importStateResult

		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.result = msg.result
		m.status = fmt.Sprintf("Imported %d expenses, skipped %d duplicates.",
			len(msg.result.Created), len(msg.result.Duplicates))

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	if m.state == importStateResult {
		m.state = importStateFilePick
		m.result = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select a CSV export to import:\n\n" + m.filePicker.View(),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status))

	if len(m.result.Duplicates) > 0 {
		b.WriteString("\n\nSkipped:\n")

		for _, d := range m.result.Duplicates {
			fmt.Fprintf(&b, "  %s  %s  %s\n",
				FormatDate(d.Date),
				FormatAmount(document.Cents(d.Amount), d.Currency),
				d.Description,
			)
		}
	}

	b.WriteString("\n(Esc to go back)")

	return style.Render(b.String())
}

type expenseImportMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return expenseImportMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.importService.Import(ctx, f)
		if err != nil {
			return expenseImportMsg{err: err}
		}

		return expenseImportMsg{result: result}
	}
}
