package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/status"
)

type docState int

const (
	docStateBrowse docState = iota
	docStatePick
	docStateResult
)

// DocumentsModel is the browse-and-transition screen for one document
// family. The same model serves invoices, quotes, payments, recurring
// invoices, expenses, clients, and products.
type DocumentsModel struct {
	CommonModel
	svc    *document.Service
	engine *status.Engine
	typ    document.Type

	state docState
	table table.Model
	docs  []document.Document

	form    *huh.Form
	pickKey string

	// Outcome of the most recent apply.
	target     status.Key
	conflicts  []status.Conflict
	resolution *status.Solution
	suggestion *status.Solution
	formCmd    document.FormCommand

	filter     document.ListFilter
	loading    bool
	err        error
	statusLine string
}

func NewDocumentsModel(svc *document.Service, engine *status.Engine, typ document.Type) DocumentsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Ref", Width: 28},
		{Title: "Status", Width: 14},
		{Title: "Amount", Width: 14},
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

	return DocumentsModel{
		svc:    svc,
		engine: engine,
		typ:    typ,
		table:  t,
	}
}

func (m DocumentsModel) Title() string {
	name := strings.ReplaceAll(string(m.typ), "_", " ")
	return strings.ToUpper(name[:1]) + name[1:] + "s"
}

func (m DocumentsModel) ShortHelp() string {
	switch m.state {
	case docStatePick:
		return "Pick a status | Esc: cancel"
	case docStateResult:
		return "y: run suggestion | Esc/Enter: dismiss"
	}

	return "Esc: back | s: set status | a: archive | x: delete | u: restore | v: toggle shelved | r: refresh"
}

func (m DocumentsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DocumentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case docsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.docs = msg.docs
		m.err = nil
		m.refreshTable()

		return m, nil

	case lifecycleDoneMsg:
		if msg.err != nil {
			m.statusLine = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusLine = msg.what
		}

		return m, m.loadCmd()

	case applyOutcomeMsg:
		if msg.err != nil {
			m.statusLine = fmt.Sprintf("Error: %v", msg.err)
			m.state = docStateBrowse
			m.table.Focus()

			return m, m.loadCmd()
		}

		m.target = msg.target
		m.conflicts = msg.conflicts
		m.resolution = msg.resolution
		m.suggestion = msg.suggestion
		m.formCmd = msg.form
		m.state = docStateResult

		return m, nil

	case solutionDoneMsg:
		if msg.err != nil {
			m.statusLine = fmt.Sprintf("Error: %v", msg.err)
		} else if msg.form.Action != "" {
			m.statusLine = describeForm(msg.form)
		} else {
			m.statusLine = "Done."
		}

		m.state = docStateBrowse
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 3))
		return m, nil
	}

	switch m.state {
	case docStateBrowse:
		return m.updateBrowse(msg)
	case docStatePick:
		return m.updatePick(msg)
	case docStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m DocumentsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "v":
			m.filter.IncludeArchived = !m.filter.IncludeArchived
			m.filter.IncludeDeleted = m.filter.IncludeArchived

			return m, m.loadCmd()
		case "a":
			return m, m.lifecycleCmd("Archived.", m.svc.Archive)
		case "x":
			return m, m.lifecycleCmd("Deleted.", m.svc.Delete)
		case "u":
			return m, m.lifecycleCmd("Restored.", m.svc.Restore)
		case "s":
			return m.enterPickMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// enterPickMode opens a status picker listing every transition that can
// be applied to the selected document, the generic overlay included.
func (m DocumentsModel) enterPickMode() (tea.Model, tea.Cmd) {
	doc := m.selected()
	if doc == nil {
		return m, nil
	}

	var options []huh.Option[string]

	for _, fam := range []document.Type{m.typ, status.Generic} {
		for _, d := range status.All(fam) {
			if !d.Applicable() || !d.CanBeApplied(doc) {
				continue
			}

			label := m.engine.Name(d)
			if label == "" {
				label = string(d.Key)
			}

			if d.MeetsCondition(doc) {
				label += " (current)"
			}

			options = append(options, huh.NewOption(label, string(fam)+"/"+string(d.Key)))
		}
	}

	if len(options) == 0 {
		m.statusLine = "No statuses can be applied to this document."
		return m, nil
	}

	m.pickKey = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("status").
				Title("Set status").
				Options(options...).
				Value(&m.pickKey),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = docStatePick
	m.table.Blur()

	return m, m.form.Init()
}

func (m DocumentsModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = docStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.form = nil

	famStr, keyStr, _ := strings.Cut(m.pickKey, "/")

	return m, m.applyCmd(document.Type(famStr), status.Key(keyStr))
}

func (m DocumentsModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		// Run the suggestion: the remedial action of a clean apply, or
		// the first conflict's workaround.
		sol := m.suggestion
		if sol == nil {
			sol = m.resolution
		}

		if sol != nil {
			return m, m.solutionCmd(sol)
		}

		fallthrough
	case "esc", "enter":
		m.state = docStateBrowse
		m.table.Focus()

		return m, m.loadCmd()
	}

	return m, nil
}

func (m DocumentsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading documents...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	shelved := "hidden"
	if m.filter.IncludeArchived {
		shelved = "shown"
	}

	header := fmt.Sprintf("%s | [v] archived/deleted: %s", m.Title(), activeStyle(shelved))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	switch m.state {
	case docStatePick:
		if m.form != nil {
			panel := panelStyle().Render("Set status\n\n" + m.form.View())
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
		}
	case docStateResult:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle().Render(m.resultView()))
	}

	if m.statusLine != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.statusLine) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m DocumentsModel) resultView() string {
	var b strings.Builder

	if len(m.conflicts) > 0 {
		fmt.Fprintf(&b, "Cannot set %q:\n\n", m.target)

		for _, c := range m.conflicts {
			fmt.Fprintf(&b, "• %s\n", c.Message)
		}

		if m.resolution != nil {
			fmt.Fprintf(&b, "\nSuggestion: %s\n[y] run it", m.resolution.Message)
		}

		return b.String()
	}

	fmt.Fprintf(&b, "Status %q set.\n", m.target)

	if m.suggestion != nil {
		fmt.Fprintf(&b, "\nSuggestion: %s\n[y] run it", m.suggestion.Message)
	}

	return b.String()
}

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(48)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func describeForm(cmd document.FormCommand) string {
	switch cmd.Action {
	case "create":
		return fmt.Sprintf("Open the new-%s form (tab %d).", cmd.Type, cmd.TabIndex)
	case "edit":
		return fmt.Sprintf("Open %s %s for editing (tab %d).", cmd.Type, cmd.DocumentID, cmd.TabIndex)
	}

	return ""
}

func (m DocumentsModel) selected() document.Document {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.docs) {
		return nil
	}

	return m.docs[idx]
}

func (m *DocumentsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.docs))
	for _, doc := range m.docs {
		rows = append(rows, m.rowFor(doc))
	}

	m.table.SetRows(rows)
}

func (m DocumentsModel) rowFor(doc document.Document) table.Row {
	primary := ""
	if d, found := status.Primary(m.typ, doc); found {
		primary = m.engine.Name(d)
	}

	switch d := doc.(type) {
	case *document.Invoice:
		return table.Row{FormatDate(d.IssueDate), d.Number, primary, FormatAmount(d.Amount, d.Currency)}
	case *document.Quote:
		return table.Row{FormatDate(d.IssueDate), d.Number, primary, FormatAmount(d.Amount, d.Currency)}
	case *document.Payment:
		return table.Row{FormatDate(d.PaymentDate), d.Reference, primary, FormatAmount(d.Amount, d.Currency)}
	case *document.RecurringInvoice:
		return table.Row{FormatDate(d.StartDate), d.Frequency, primary, FormatAmount(d.Amount, d.Currency)}
	case *document.Expense:
		return table.Row{FormatDate(d.ExpenseDate), d.Description, primary, FormatAmount(d.Amount, d.Currency)}
	case *document.Client:
		return table.Row{FormatDate(d.CreatedAt), d.Name, primary, d.Currency}
	case *document.Product:
		return table.Row{FormatDate(d.CreatedAt), d.Name, primary, FormatAmount(d.Price, d.Currency)}
	}

	return table.Row{"", "", primary, ""}
}

// Messages and commands

type docsLoadedMsg struct {
	docs []document.Document
	err  error
}

func (m DocumentsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		docs, err := m.svc.List(ctx, m.typ, m.filter)

		return docsLoadedMsg{docs: docs, err: err}
	}
}

type lifecycleDoneMsg struct {
	what string
	err  error
}

func (m DocumentsModel) lifecycleCmd(what string, action func(ctx context.Context, doc document.Document) error) tea.Cmd {
	doc := m.selected()
	if doc == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return lifecycleDoneMsg{what: what, err: action(ctx, doc)}
	}
}

type applyOutcomeMsg struct {
	target     status.Key
	conflicts  []status.Conflict
	resolution *status.Solution
	suggestion *status.Solution
	form       document.FormCommand
	err        error
}

func (m DocumentsModel) applyCmd(family document.Type, target status.Key) tea.Cmd {
	doc := m.selected()
	if doc == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res := m.engine.Apply(family, doc, target)
		if len(res.Conflicts) > 0 {
			return applyOutcomeMsg{
				target:     target,
				conflicts:  res.Conflicts,
				resolution: res.Resolution(),
			}
		}

		var form document.FormCommand

		solution, err := res.Solve(document.WithFormSink(ctx, &form))
		if err != nil {
			return applyOutcomeMsg{target: target, err: err}
		}

		return applyOutcomeMsg{target: target, suggestion: solution, form: form}
	}
}

type solutionDoneMsg struct {
	form document.FormCommand
	err  error
}

func (m DocumentsModel) solutionCmd(sol *status.Solution) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var form document.FormCommand

		err := sol.Solve(document.WithFormSink(ctx, &form))

		return solutionDoneMsg{form: form, err: err}
	}
}
