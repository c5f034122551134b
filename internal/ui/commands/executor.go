package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"yubin/internal/domain"
	"yubin/internal/eventbus"
	"yubin/internal/ui/coordinator"
	"yubin/internal/ui/services/navigation"
	"yubin/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(session *coordinator.Coordinator, state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Session: session,
			State:   state,
			Bus:     bus,
		},
	}
}

// ExecuteLoad creates and executes a load command
func (e *Executor) ExecuteLoad(source string) tea.Cmd {
	return NewLoadCommand(e.ctx, source).Execute()
}

// ExecuteQuery creates and executes a query command
func (e *Executor) ExecuteQuery(text string) tea.Cmd {
	return NewQueryCommand(e.ctx, text).Execute()
}

// ExecuteCycleSearchMode moves through the mode selector and returns the new mode
func (e *Executor) ExecuteCycleSearchMode(step int) (domain.SearchMode, tea.Cmd) {
	cmd := NewCycleSearchModeCommand(e.ctx, step)
	return cmd.Mode(), cmd.Execute()
}

// ExecuteSetSearchMode creates and executes a search mode command
func (e *Executor) ExecuteSetSearchMode(mode domain.SearchMode) tea.Cmd {
	return NewSearchModeCommand(e.ctx, mode).Execute()
}

// ExecuteCycleSort creates and executes a sort command
func (e *Executor) ExecuteCycleSort() tea.Cmd {
	return NewSortCommand(e.ctx).Execute()
}

// ExecuteCyclePageSize creates and executes a page size command
func (e *Executor) ExecuteCyclePageSize() tea.Cmd {
	return NewPageSizeCommand(e.ctx).Execute()
}

// ExecuteNavigate creates and executes a page navigation command
func (e *Executor) ExecuteNavigate(direction navigation.Direction) tea.Cmd {
	return NewNavigateCommand(e.ctx, direction).Execute()
}

// ExecuteGoToPage creates and executes a page jump command
func (e *Executor) ExecuteGoToPage(page int) tea.Cmd {
	return NewGoToPageCommand(e.ctx, page).Execute()
}
