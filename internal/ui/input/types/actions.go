package types

import (
	"yubin/internal/domain"
	"yubin/internal/ui/services/navigation"
)

// Page navigation
type NavigateAction struct {
	Direction navigation.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

type GoToPageAction struct {
	Page int
}

func (a GoToPageAction) Type() string { return "goto_page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ClearTextAction struct{}

func (a ClearTextAction) Type() string { return "clear_text" }

// Selector actions
type CycleSearchModeAction struct {
	Step int // +1 forward, -1 backward
}

func (a CycleSearchModeAction) Type() string { return "cycle_search_mode" }

type SetSearchModeAction struct {
	Mode domain.SearchMode
}

func (a SetSearchModeAction) Type() string { return "set_search_mode" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type CyclePageSizeAction struct{}

func (a CyclePageSizeAction) Type() string { return "cycle_page_size" }

// Output actions
type OpenResultsPagerAction struct{}

func (a OpenResultsPagerAction) Type() string { return "open_results_pager" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }
