package tui

import (
	"context"
	_ "embed"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/campus/internal/core/config"
	"github.com/hay-kot/campus/internal/core/logging"
	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/school"
	tuinotify "github.com/hay-kot/campus/internal/tui/notify"
)

//go:embed handbook.md
var handbook string

// Key constants for event handling.
const (
	keyCtrlC = "ctrl+c"
)

// Deps are the services the TUI is built on. One Model owns one modal
// stack for the lifetime of the program.
type Deps struct {
	Config    *config.Config
	Directory *school.Directory
	Bus       *tuinotify.Bus // optional, enables notification history
	Warnings  []string       // startup warnings shown as notices
	Build     BuildInfo
}

// account is the signed-in user. It is shared by pointer so that values
// copied into modal callbacks see later edits.
type account struct {
	ID       string
	Name     string
	Role     string
	Email    string
	Phone    string
	Theme    string
	Channels []string
	Enabled  []string
	password string
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	dir    *school.Directory
	bus    *tuinotify.Bus
	stack  *modal.Manager
	flows  *modal.Workflows
	modals *ModalManager
	keys   KeyMap
	user   *account
	logger zerolog.Logger

	// Dashboard
	view         ViewType
	cursor       int
	students     []school.Student
	classes      []school.Class
	events       []school.Event
	statusFilter []string

	build    BuildInfo
	warnings []string
	width    int
	height   int
	quitting bool
}

// New builds the model. ctx bounds the background waits of confirmation
// flows; cancel it when the program exits.
func New(ctx context.Context, deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	// A nil *Bus stored in the interface would not compare equal to nil.
	var pub modal.Publisher
	if deps.Bus != nil {
		pub = deps.Bus
	}

	stack := modal.NewManager(logging.Component("modal"))
	flows := modal.NewWorkflows(stack, cfg.ModalDefaults(), pub, logging.Component("workflow"))
	registry := DefaultRegistry(RendererEnv{
		Currency: cfg.Currency,
		Bus:      deps.Bus,
		FileRoot: cfg.FileRoot,
		Searcher: deps.Directory,
	})

	m := Model{
		ctx:    ctx,
		cfg:    cfg,
		dir:    deps.Directory,
		bus:    deps.Bus,
		stack:  stack,
		flows:  flows,
		modals: NewModalManager(stack, registry, cfg.CancelKey),
		keys:   DefaultKeyMap(),
		user: &account{
			ID:       "usr-admin",
			Name:     "School Administrator",
			Role:     "admin",
			Email:    "office@campus.test",
			Theme:    cfg.Theme,
			Channels: []string{"in-app", "email", "sms"},
			Enabled:  []string{"in-app"},
			password: "campus",
		},
		build:    deps.Build,
		warnings: deps.Warnings,
		logger:   logging.Component("tui"),
	}
	m.refresh()
	return m
}

// Stack exposes the modal stack, mainly for tests and the modals command.
func (m Model) Stack() *modal.Manager { return m.stack }

// Workflows exposes the confirm and notify helpers.
func (m Model) Workflows() *modal.Workflows { return m.flows }

// Init shows startup warnings.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.warnings)+1)
	for _, w := range m.warnings {
		cmds = append(cmds, scheduleDismiss(m.flows.ShowWarning("Startup", w)))
	}
	cmds = append(cmds, m.modals.Drain())
	return tea.Batch(cmds...)
}

// Update routes every message. While a modal is active it receives all
// key input; the dashboard only sees keys when the stack is empty.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modals.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.modals.Active() {
			cmd = m.modals.HandleKey(msg)
		} else {
			m, cmd = m.handleKey(msg)
		}
	case dismissMsg:
		m.flows.Expire(msg.dismissal)
	case submittedMsg:
		m, cmd = m.handleSubmitted(msg)
	case confirmResultMsg:
		m, cmd = m.handleConfirmResult(msg)
	case importParsedMsg:
		m, cmd = m.handleImportParsed(msg)
	case actionResultMsg:
		m, cmd = m.handleActionResult(msg)
	default:
		cmd = m.modals.Update(msg)
	}

	return m, tea.Batch(cmd, m.modals.Drain())
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, k.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, k.Down):
		m.cursor = min(m.cursor+1, max(m.rows()-1, 0))
	case key.Matches(msg, k.NextView):
		m.view = m.view.Next()
		m.cursor = 0
	default:
		return m, m.openForKey(msg)
	}
	return m, nil
}

// refresh reloads the dashboard rows from the directory.
func (m *Model) refresh() {
	if m.dir == nil {
		return
	}

	all := m.dir.Students(school.StudentQuery{Sort: school.SortByName}).Items
	students := make([]school.Student, 0, len(all))
	for _, s := range all {
		if len(m.statusFilter) > 0 && !slices.Contains(m.statusFilter, string(s.Status)) {
			continue
		}
		students = append(students, s)
	}
	m.students = students
	m.classes = m.dir.Classes()
	m.events = m.dir.Events()
	m.cursor = min(m.cursor, max(m.rows()-1, 0))
}

// rows is the number of rows in the active pane.
func (m Model) rows() int {
	switch m.view {
	case ViewClasses:
		return len(m.classes)
	case ViewEvents:
		return len(m.events)
	default:
		return len(m.students)
	}
}

func (m Model) selectedStudent() (school.Student, bool) {
	if m.view != ViewStudents || m.cursor >= len(m.students) {
		return school.Student{}, false
	}
	return m.students[m.cursor], true
}

// selectedClass is the highlighted class, or the class of the highlighted
// student.
func (m Model) selectedClass() (school.Class, bool) {
	switch m.view {
	case ViewClasses:
		if m.cursor < len(m.classes) {
			return m.classes[m.cursor], true
		}
	case ViewStudents:
		if s, ok := m.selectedStudent(); ok {
			c, err := m.dir.Class(s.ClassID)
			return c, err == nil
		}
	case ViewEvents:
		if m.cursor < len(m.events) && m.events[m.cursor].ClassID != "" {
			c, err := m.dir.Class(m.events[m.cursor].ClassID)
			return c, err == nil
		}
	}
	return school.Class{}, false
}

func (m Model) selectedEvent() (school.Event, bool) {
	if m.view != ViewEvents || m.cursor >= len(m.events) {
		return school.Event{}, false
	}
	return m.events[m.cursor], true
}
