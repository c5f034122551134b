package commands

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"yubin/internal/domain"
	"yubin/internal/eventbus"
	"yubin/internal/ui/coordinator"
	"yubin/internal/ui/services/navigation"
	"yubin/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Session *coordinator.Coordinator
	State   *state.AppState
	Bus     eventbus.EventBus
}

// LoadCommand starts loading the dataset in the background
type LoadCommand struct {
	ctx    *CommandContext
	source string
}

// NewLoadCommand creates a new load command
func NewLoadCommand(ctx *CommandContext, source string) *LoadCommand {
	return &LoadCommand{ctx: ctx, source: source}
}

// Execute marks the session as loading and asks the loader for the dataset
func (c *LoadCommand) Execute() tea.Cmd {
	if err := c.ctx.Session.BeginLoad(); err != nil {
		log.Printf("Cannot start load: %v", err)
		c.ctx.State.StatusMessage = fmt.Sprintf("Error: %v", err)
		return nil
	}
	c.ctx.State.SetLoading(c.source)
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.LoadRequestedEvent{Source: c.source})
	}
	return nil
}

// QueryCommand feeds new query text to the session
type QueryCommand struct {
	ctx  *CommandContext
	text string
}

// NewQueryCommand creates a new query command
func NewQueryCommand(ctx *CommandContext, text string) *QueryCommand {
	return &QueryCommand{ctx: ctx, text: text}
}

// Execute restarts the debounce timer for the new text
func (c *QueryCommand) Execute() tea.Cmd {
	c.ctx.Session.OnQueryTextChange(c.text)
	return nil
}

// SearchModeCommand switches the search mode, which resets the query
type SearchModeCommand struct {
	ctx  *CommandContext
	mode domain.SearchMode
}

// NewSearchModeCommand creates a command switching to mode
func NewSearchModeCommand(ctx *CommandContext, mode domain.SearchMode) *SearchModeCommand {
	return &SearchModeCommand{ctx: ctx, mode: mode}
}

// NewCycleSearchModeCommand creates a command moving step places through the mode selector
func NewCycleSearchModeCommand(ctx *CommandContext, step int) *SearchModeCommand {
	current := ctx.Session.Search.GetMode()
	idx := 0
	for i, m := range domain.SearchModes {
		if m == current {
			idx = i
			break
		}
	}
	n := len(domain.SearchModes)
	next := ((idx+step)%n + n) % n
	return NewSearchModeCommand(ctx, domain.SearchModes[next])
}

// Execute applies the mode change
func (c *SearchModeCommand) Execute() tea.Cmd {
	c.ctx.Session.OnModeChange(c.mode)
	c.ctx.State.StatusMessage = ""
	return nil
}

// Mode returns the target mode
func (c *SearchModeCommand) Mode() domain.SearchMode {
	return c.mode
}

// SortCommand cycles the result order
type SortCommand struct {
	ctx *CommandContext
}

// NewSortCommand creates a new sort command
func NewSortCommand(ctx *CommandContext) *SortCommand {
	return &SortCommand{ctx: ctx}
}

// Execute re-sorts the displayed results in the next order
func (c *SortCommand) Execute() tea.Cmd {
	order := c.ctx.Session.NextSortOrder()
	c.ctx.State.StatusMessage = fmt.Sprintf("Sort: %s", order.Label())
	return nil
}

// PageSizeCommand cycles the page size
type PageSizeCommand struct {
	ctx *CommandContext
}

// NewPageSizeCommand creates a new page size command
func NewPageSizeCommand(ctx *CommandContext) *PageSizeCommand {
	return &PageSizeCommand{ctx: ctx}
}

// Execute switches to the next page size and back to page 1
func (c *PageSizeCommand) Execute() tea.Cmd {
	size := c.ctx.Session.NextPageSize()
	c.ctx.State.StatusMessage = fmt.Sprintf("%d per page", size)
	return nil
}

// PageCommand moves between result pages
type PageCommand struct {
	ctx       *CommandContext
	direction navigation.Direction
	page      int // used when direction is empty
}

// NewNavigateCommand creates a command moving in direction
func NewNavigateCommand(ctx *CommandContext, direction navigation.Direction) *PageCommand {
	return &PageCommand{ctx: ctx, direction: direction}
}

// NewGoToPageCommand creates a command jumping to page
func NewGoToPageCommand(ctx *CommandContext, page int) *PageCommand {
	return &PageCommand{ctx: ctx, page: page}
}

// Execute moves the page, clamped to the available pages
func (c *PageCommand) Execute() tea.Cmd {
	if c.direction != "" {
		c.ctx.Session.NavigatePage(c.direction)
	} else {
		c.ctx.Session.OnPageChange(c.page)
	}
	return nil
}
