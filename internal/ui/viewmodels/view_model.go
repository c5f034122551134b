package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"yubin/internal/ui/coordinator"
	"yubin/internal/ui/state"
	"yubin/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	session          *coordinator.Coordinator
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	helpContent      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, session *coordinator.Coordinator, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		session:          session,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it summarizes
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetHelpContent sets the text of the help popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	result := vm.session.View()
	vm.inputTransformer.SetMode(result.Mode)

	return views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Result:           result,
		TextInput:        vm.inputTransformer.GetInputText(),
		Loading:          vm.state.Loading,
		LoadSource:       vm.state.LoadSource,
		LoadError:        vm.state.LoadError,
		StatusMessage:    vm.state.StatusMessage,
		ShowHelp:         vm.state.ShowHelp,
		HelpContent:      vm.helpContent,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		HelpModel:        vm.help,
		Keys:             vm.keys,
		SpinnerFrame:     vm.state.SpinnerFrame,
	}
}
