package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"yubin/internal/domain"
	"yubin/internal/ui/input/types"
	"yubin/internal/ui/services/navigation"
	"yubin/internal/ui/services/search"
)

// QueryMode is the default mode: keys edit the query unless bound below
type QueryMode struct {
	textInput *textinput.Model
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{textInput: ti}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		if m.textInput != nil && m.textInput.Value() != "" {
			return []types.Action{types.ClearTextAction{}}, true
		}
		return []types.Action{types.QuitAction{}}, true

	case "tab":
		return []types.Action{types.CycleSearchModeAction{Step: 1}}, true
	case "shift+tab":
		return []types.Action{types.CycleSearchModeAction{Step: -1}}, true
	case "ctrl+s":
		return []types.Action{types.CycleSortAction{}}, true
	case "ctrl+p":
		return []types.Action{types.CyclePageSizeAction{}}, true

	case "pgup":
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionPrev}}, true
	case "pgdown":
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionNext}}, true
	case "ctrl+pgup":
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionFirst}}, true
	case "ctrl+pgdown":
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionLast}}, true

	case "ctrl+o":
		if ctx.HasResults() {
			return []types.Action{types.OpenResultsPagerAction{}}, true
		}
		return nil, true
	case "f1":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	}

	// alt+1 .. alt+9 jump straight to a page
	if s := msg.String(); strings.HasPrefix(s, "alt+") && len(s) == 5 && s[4] >= '1' && s[4] <= '9' {
		return []types.Action{types.GoToPageAction{Page: int(s[4] - '0')}}, true
	}

	// Let the main handler update the text input
	return nil, false
}

// Transform normalizes typed text for the current search mode
func (m *QueryMode) Transform(text string, ctx types.Context) string {
	if ctx.SearchMode() == domain.ModeZipCode {
		return search.FormatZipInput(text)
	}
	return text
}
