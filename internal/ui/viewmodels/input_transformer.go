package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"yubin/internal/domain"
)

// InputTransformer renders the query box for the active search mode
type InputTransformer struct {
	mode      domain.SearchMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      domain.ModeZipCode,
		textInput: textInput,
	}
}

// SetMode sets the search mode the query box is typed in
func (it *InputTransformer) SetMode(mode domain.SearchMode) {
	it.mode = mode
}

// GetInputText returns the query box view with a placeholder matching the mode
func (it *InputTransformer) GetInputText() string {
	ti := it.textInput
	ti.Placeholder = Placeholder(it.mode)
	return ti.View()
}

// GetInputModeString returns the name of the mode, as used in config files
func (it *InputTransformer) GetInputModeString() string {
	return it.mode.String()
}

// Placeholder returns the hint shown in an empty query box
func Placeholder(mode domain.SearchMode) string {
	switch mode {
	case domain.ModeAddress:
		return "下京区"
	case domain.ModeFurigana:
		return "ｼﾓｷﾞｮｳ"
	default:
		return "600-8008"
	}
}
