package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"yubin/internal/ui/input/types"
)

// HelpMode scrolls the help popup
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "f1", "q", "?":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
	case "up", "k":
		return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
	case "pgup":
		return []types.Action{types.ScrollHelpAction{Delta: -10}}, true
	case "pgdown":
		return []types.Action{types.ScrollHelpAction{Delta: 10}}, true
	case "o":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeQuery},
			types.OpenHelpPagerAction{},
		}, true
	}
	// Swallow everything else so stray keys don't edit the hidden query
	return nil, true
}
