// Package tui provides the interactive terminal dashboard for tempus.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jgrefe/tempus/internal/config"
	"github.com/jgrefe/tempus/internal/model"
	"github.com/jgrefe/tempus/internal/report"
	"github.com/jgrefe/tempus/internal/service"
	"github.com/jgrefe/tempus/internal/timeutil"
)

// Model is the root dashboard model
type Model struct {
	svc    *service.Service
	cfg    config.Config
	styles Styles
	keys   KeyMap

	// UI state
	width   int
	height  int
	loading bool
	err     error

	// Data snapshot
	active   *model.TimeEntry
	today    []model.TimeEntry
	projects map[string]model.Project
	clients  map[string]model.Client

	// Input state for starting a timer
	inputMode bool
	input     textinput.Model
}

// New creates a new dashboard model
func New(svc *service.Service, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "project: what are you working on?"
	ti.CharLimit = 200
	ti.Width = 50

	return Model{
		svc:     svc,
		cfg:     cfg,
		styles:  NewStyles(cfg.Theme),
		keys:    DefaultKeyMap(),
		loading: true,
		input:   ti,
	}
}

// stateMsg is sent when the data snapshot is loaded
type stateMsg struct {
	data *model.AppData
	err  error
}

// actionMsg is sent after a start or stop action completes
type actionMsg struct {
	err error
}

// tickMsg is sent every second to update elapsed time
type tickMsg time.Time

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadState(), tick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			if m.active == nil {
				m.inputMode = true
				m.input.Focus()
				m.input.SetValue("")
				return m, textinput.Blink
			}
			return m, nil
		case key.Matches(msg, m.keys.Stop):
			if m.active != nil {
				return m, m.stopTimer(m.active.ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadState()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.loading = false
		m.err = msg.err
		if msg.data != nil {
			m.applySnapshot(msg.data)
		}
		return m, nil

	case actionMsg:
		m.err = msg.err
		return m, m.loadState()

	case tickMsg:
		return m, tick()
	}

	if m.inputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleInputMode handles key events while the start input is focused
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		value := strings.TrimSpace(m.input.Value())
		if value != "" {
			m.inputMode = false
			m.input.Blur()
			return m, m.startTimer(value)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.inputMode = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("tempus"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
		return m.styles.App.Render(b.String())
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderTimer())
	b.WriteString("\n")
	b.WriteString(m.renderToday())
	b.WriteString("\n")

	if m.inputMode {
		b.WriteString(m.styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderTimer renders the running timer section
func (m Model) renderTimer() string {
	var b strings.Builder

	if m.active == nil {
		b.WriteString(m.styles.TimerStopped.Render("● No timer running"))
		b.WriteString("\n")
		return b.String()
	}

	elapsed := time.Since(m.active.StartTime)
	projectName, clientName := m.names(m.active.ProjectID)

	b.WriteString(m.styles.TimerRunning.Render("● Running"))
	b.WriteString("  ")
	b.WriteString(m.styles.TimerElapsed.Render(report.FormatClock(elapsed)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		m.styles.StatLabel.Render("Project:"),
		m.styles.EntryProject.Render(fmt.Sprintf("%s (%s)", projectName, clientName))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		m.styles.StatLabel.Render("Task:"),
		m.styles.EntryDesc.Render(m.active.Description)))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		m.styles.StatLabel.Render("Started:"),
		m.styles.StatValue.Render(m.active.StartTime.Format(m.cfg.TimeLayout()))))

	return b.String()
}

// renderToday renders today's entries with their total
func (m Model) renderToday() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("Today"))
	b.WriteString("\n")

	if len(m.today) == 0 {
		b.WriteString("  No entries yet\n")
		return b.String()
	}

	total := time.Duration(0)
	for _, e := range m.today {
		projectName, _ := m.names(e.ProjectID)
		span := entrySpan(e)
		total += span
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			m.styles.EntryTime.Render(e.StartTime.Format("15:04")),
			m.styles.EntryDuration.Render(report.FormatDuration(span)),
			m.styles.EntryDesc.Render(fmt.Sprintf("%s - %s", projectName, e.Description))))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		m.styles.StatLabel.Render("Total:"),
		m.styles.StatValue.Render(report.FormatDuration(total))))

	return b.String()
}

// renderStatusBar renders the key hints at the bottom
func (m Model) renderStatusBar() string {
	var parts []string
	if m.inputMode {
		parts = append(parts, m.keyHelp("enter", "start"), m.keyHelp("esc", "cancel"))
	} else {
		if m.active == nil {
			parts = append(parts, m.keyHelp("s", "start"))
		} else {
			parts = append(parts, m.keyHelp("x", "stop"))
		}
		parts = append(parts, m.keyHelp("r", "refresh"), m.keyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	return m.styles.StatusBar.Render(content)
}

// entrySpan is the tracked span of an entry, still growing if it runs
func entrySpan(e model.TimeEntry) time.Duration {
	if e.IsRunning() {
		return time.Since(e.StartTime)
	}
	return e.Duration()
}

// keyHelp renders a single key hint
func (m Model) keyHelp(k, desc string) string {
	return fmt.Sprintf("%s %s", m.styles.StatusKey.Render(k), m.styles.StatusHelp.Render(desc))
}

// applySnapshot derives the view state from a data snapshot
func (m *Model) applySnapshot(data *model.AppData) {
	m.projects = data.ProjectIndex()
	m.clients = data.ClientIndex()

	m.active = nil
	for i := range data.TimeEntries {
		if data.TimeEntries[i].IsRunning() && !data.TimeEntries[i].IsArchived {
			e := data.TimeEntries[i]
			m.active = &e
			break
		}
	}

	now := time.Now()
	m.today = nil
	for _, e := range data.TimeEntries {
		if e.IsArchived {
			continue
		}
		if timeutil.SameDay(e.StartTime, now) {
			m.today = append(m.today, e)
		}
	}
}

// names resolves a project id to project and client display names
func (m Model) names(projectID string) (string, string) {
	p, ok := m.projects[projectID]
	if !ok {
		return report.UnknownProject, report.UnknownClient
	}
	c, ok := m.clients[p.ClientID]
	if !ok {
		return p.Name, report.UnknownClient
	}
	return p.Name, c.Name
}

// loadState loads a fresh data snapshot from the service
func (m Model) loadState() tea.Cmd {
	return func() tea.Msg {
		data, err := m.svc.Data()
		return stateMsg{data: data, err: err}
	}
}

// startTimer resolves the input value and starts a new entry.
// The value is "project: description"; without a colon the first
// word is the project and the rest is the description.
func (m Model) startTimer(value string) tea.Cmd {
	return func() tea.Msg {
		projectRef, description := splitStartInput(value)

		data, err := m.svc.Data()
		if err != nil {
			return actionMsg{err: err}
		}
		project, err := resolveProject(data, projectRef)
		if err != nil {
			return actionMsg{err: err}
		}

		_, err = m.svc.Start(project.ID, description)
		return actionMsg{err: err}
	}
}

// stopTimer stops the running entry
func (m Model) stopTimer(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.Stop(id)
		return actionMsg{err: err}
	}
}

// splitStartInput splits "project: description" or "project description"
func splitStartInput(value string) (string, string) {
	if i := strings.Index(value, ":"); i >= 0 {
		return strings.TrimSpace(value[:i]), strings.TrimSpace(value[i+1:])
	}
	fields := strings.SplitN(value, " ", 2)
	if len(fields) == 2 {
		return fields[0], strings.TrimSpace(fields[1])
	}
	return value, ""
}

// resolveProject finds a project by id or unique case-insensitive name
func resolveProject(data *model.AppData, ref string) (model.Project, error) {
	if p, ok := data.ProjectByID(ref); ok {
		return p, nil
	}

	var matches []model.Project
	for _, p := range data.Projects {
		if p.IsArchived {
			continue
		}
		if strings.EqualFold(p.Name, ref) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Project{}, fmt.Errorf("no project matches %q", ref)
	default:
		return model.Project{}, fmt.Errorf("%d projects match %q, use the project id", len(matches), ref)
	}
}

// tick schedules the next per-second redraw for the elapsed display
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard
func Run(svc *service.Service, cfg config.Config) error {
	p := tea.NewProgram(New(svc, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
