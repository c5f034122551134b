package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"yubin/internal/config"
	"yubin/internal/eventbus"
	"yubin/internal/ui/commands"
	"yubin/internal/ui/coordinator"
	"yubin/internal/ui/handlers"
	"yubin/internal/ui/input"
	inputtypes "yubin/internal/ui/input/types"
	"yubin/internal/ui/state"
	"yubin/internal/ui/viewmodels"
	"yubin/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState          // UI-only state
	session *coordinator.Coordinator // search session

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        keyMap
	helpContent string

	// Handlers
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	pagerOps     *PagerOps              // ov pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over session
func NewModel(bus eventbus.EventBus, cfg *config.Config, session *coordinator.Coordinator) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		session:      session,
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pagerOps:     NewPagerOps(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, session)
	m.cmdExecutor = commands.NewExecutor(session, appState, bus)
	m.helpContent = NewHelpRenderer().RenderHelpContent()

	m.viewModel = viewmodels.NewViewModel(appState, session, *m.inputHandler.TextInput())
	m.viewModel.SetHelp(m.help, m.keys)
	m.viewModel.SetHelpContent(m.helpContent)

	// Debounce timers fire on their own goroutine; hop back onto the event loop
	session.SetDueFunction(m.deliverDue)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps.SetProgram(p)
}

func (m *Model) deliverDue(seq uint64) {
	if m.program == nil {
		log.Printf("Dropping search #%d: program not set", seq)
		return
	}
	m.program.Send(searchDueMsg{seq: seq})
}

// Init starts the dataset load, the spinner and the cursor blink
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.cmdExecutor.ExecuteLoad(m.config.Dataset.Source),
		tick(),
		m.inputHandler.Init(),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.keys)
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{Session: m.session}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if len(cmds) == 0 {
			return m, nil
		}

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		return m.cmdExecutor.ExecuteQuery(a.Text)

	case inputtypes.ClearTextAction:
		m.inputHandler.ClearText()
		return m.cmdExecutor.ExecuteQuery("")

	case inputtypes.CycleSearchModeAction:
		// The query box is emptied with the mode: text typed for one column means nothing in another
		m.inputHandler.ClearText()
		mode, cmd := m.cmdExecutor.ExecuteCycleSearchMode(a.Step)
		log.Printf("Search mode: %s", mode)
		return cmd

	case inputtypes.SetSearchModeAction:
		m.inputHandler.ClearText()
		return m.cmdExecutor.ExecuteSetSearchMode(a.Mode)

	case inputtypes.CycleSortAction:
		return tea.Batch(m.cmdExecutor.ExecuteCycleSort(), clearStatusAfter(statusTimeout))

	case inputtypes.CyclePageSizeAction:
		return tea.Batch(m.cmdExecutor.ExecuteCyclePageSize(), clearStatusAfter(statusTimeout))

	case inputtypes.NavigateAction:
		return m.cmdExecutor.ExecuteNavigate(a.Direction)

	case inputtypes.GoToPageAction:
		return m.cmdExecutor.ExecuteGoToPage(a.Page)

	case inputtypes.ChangeModeAction:
		switch a.Mode {
		case inputtypes.ModeHelp:
			if !m.state.ShowHelp {
				m.state.ToggleHelp()
			}
		case inputtypes.ModeQuery:
			if m.state.ShowHelp {
				m.state.ToggleHelp()
			}
		}
		return nil

	case inputtypes.ScrollHelpAction:
		m.state.ScrollHelp(a.Delta)
		if limit := m.maxHelpOffset(); m.state.HelpScrollOffset > limit {
			m.state.HelpScrollOffset = limit
		}
		return nil

	case inputtypes.OpenResultsPagerAction:
		results := m.session.Results()
		if len(results) == 0 {
			return nil
		}
		return m.fetchResultsPager(views.PlainTable(results))

	case inputtypes.OpenHelpPagerAction:
		return m.fetchHelpPager(m.helpContent)

	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }
	}

	log.Printf("Unhandled action: %s", action.Type())
	return nil
}

// maxHelpOffset is the last scroll position that still fills the popup
func (m *Model) maxHelpOffset() int {
	visible := m.height - 6
	if visible < 5 {
		visible = 5
	}
	lines := strings.Count(m.helpContent, "\n") + 1
	if lines <= visible {
		return 0
	}
	return lines - visible
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case searchDueMsg:
		if !m.session.RunDue(msg.seq) {
			log.Printf("Discarding stale search #%d", msg.seq)
		}
		return m, nil

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.state.InPagerMode {
			return m, nil
		}
		if m.state.Loading || m.session.Search.IsSearching() {
			m.state.Tick()
		}
		return m, tick()

	case resultsPagerMsg:
		if msg.err != nil {
			log.Printf("Results pager failed: %v", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.state.StatusMessage = "Pager unavailable, press F1 for help"
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, tick()

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	case quitMsg:
		return m, tea.Quit

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// fetchResultsPager returns a command that pages the full result table in ov
func (m *Model) fetchResultsPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return resultsPagerMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pagerOps.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return resultsPagerMsg{err: err}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pagerOps.ShowInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
