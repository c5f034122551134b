package viewmodels

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"

	"yubin/internal/domain"
	"yubin/internal/logic"
	"yubin/internal/ui/coordinator"
	"yubin/internal/ui/services/search"
	"yubin/internal/ui/state"
)

func TestBuildViewStateCombinesSessionAndAppState(t *testing.T) {
	records := []domain.Record{{ZipCode: "600-8008", Address: "京都府京都市下京区", Furigana: "ｼﾓｷﾞｮｳｸ"}}
	session := coordinator.NewCoordinator(logic.NewLoadedRecordStore(records), coordinator.Options{
		Scheduler: search.NewManualScheduler(),
		Mode:      domain.ModeAddress,
	})
	appState := state.NewAppState()
	appState.StatusMessage = "1 addresses loaded"
	appState.ShowHelp = true
	appState.ScrollHelp(3)

	vm := NewViewModel(appState, session, textinput.New())
	vm.SetDimensions(120, 40)
	vm.SetHelpContent("help text")

	vs := vm.BuildViewState()
	assert.Equal(t, 120, vs.Width)
	assert.Equal(t, 40, vs.Height)
	assert.Equal(t, "1 addresses loaded", vs.StatusMessage)
	assert.True(t, vs.ShowHelp)
	assert.Equal(t, 3, vs.HelpScrollOffset)
	assert.Equal(t, "help text", vs.HelpContent)
	assert.Equal(t, domain.ModeAddress, vs.Result.Mode)
	assert.Equal(t, 1, vs.Result.RecordCount)
}

func TestPlaceholderFollowsMode(t *testing.T) {
	assert.Equal(t, "600-8008", Placeholder(domain.ModeZipCode))
	assert.Equal(t, "下京区", Placeholder(domain.ModeAddress))
	assert.Equal(t, "ｼﾓｷﾞｮｳ", Placeholder(domain.ModeFurigana))

	it := NewInputTransformer(textinput.New())
	it.SetMode(domain.ModeFurigana)
	assert.Equal(t, "furigana", it.GetInputModeString())
}
