package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yubin/internal/domain"
	"yubin/internal/ui/input/types"
	"yubin/internal/ui/services/navigation"
)

type fakeContext struct {
	mode    domain.SearchMode
	results bool
}

func (c fakeContext) SearchMode() domain.SearchMode { return c.mode }
func (c fakeContext) CurrentPage() int              { return 1 }
func (c fakeContext) TotalPages() int               { return 3 }
func (c fakeContext) HasResults() bool              { return c.results }
func (c fakeContext) DataReady() bool               { return true }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(h *Handler, ctx types.Context, s string) []types.Action {
	var all []types.Action
	for _, r := range s {
		actions, _ := h.HandleKey(runes(string(r)), ctx)
		all = append(all, actions...)
	}
	return all
}

func TestTypingEmitsUpdates(t *testing.T) {
	h := New()
	ctx := fakeContext{mode: domain.ModeAddress}

	actions := typeText(h, ctx, "京都")
	require.Len(t, actions, 2)
	assert.Equal(t, types.UpdateTextAction{Text: "京都"}, actions[1])
	assert.Equal(t, "京都", h.TextInput().Value())
}

func TestZipModeFormatsInput(t *testing.T) {
	h := New()
	ctx := fakeContext{mode: domain.ModeZipCode}

	actions := typeText(h, ctx, "6008008")
	assert.Equal(t, "600-8008", h.TextInput().Value())
	assert.Equal(t, types.UpdateTextAction{Text: "600-8008"}, actions[len(actions)-1])

	// non-digits are dropped without an update
	actions = typeText(h, ctx, "x")
	assert.Empty(t, actions)
	assert.Equal(t, "600-8008", h.TextInput().Value())
}

func TestBoundKeys(t *testing.T) {
	h := New()
	ctx := fakeContext{results: true}

	tests := []struct {
		key  tea.KeyMsg
		want types.Action
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, types.CycleSearchModeAction{Step: 1}},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, types.CycleSearchModeAction{Step: -1}},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, types.CycleSortAction{}},
		{tea.KeyMsg{Type: tea.KeyCtrlP}, types.CyclePageSizeAction{}},
		{tea.KeyMsg{Type: tea.KeyPgDown}, types.NavigateAction{Direction: navigation.DirectionNext}},
		{tea.KeyMsg{Type: tea.KeyPgUp}, types.NavigateAction{Direction: navigation.DirectionPrev}},
		{tea.KeyMsg{Type: tea.KeyCtrlPgDown}, types.NavigateAction{Direction: navigation.DirectionLast}},
		{tea.KeyMsg{Type: tea.KeyCtrlPgUp}, types.NavigateAction{Direction: navigation.DirectionFirst}},
		{tea.KeyMsg{Type: tea.KeyCtrlO}, types.OpenResultsPagerAction{}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3"), Alt: true}, types.GoToPageAction{Page: 3}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
		{tea.KeyMsg{Type: tea.KeyEsc}, types.QuitAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			actions, _ := h.HandleKey(tt.key, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
			assert.Empty(t, h.TextInput().Value())
		})
	}
}

func TestEscClearsQueryBeforeQuitting(t *testing.T) {
	h := New()
	ctx := fakeContext{mode: domain.ModeAddress}
	typeText(h, ctx, "abc")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.ClearTextAction{}}, actions)
}

func TestHelpModeRoundTrip(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyF1}, ctx)
	assert.Equal(t, types.ModeHelp, h.CurrentMode())
	assert.Contains(t, actions, types.Action(types.ChangeModeAction{Mode: types.ModeHelp}))

	// typing while help is open does not touch the query
	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.ScrollHelpAction{Delta: 1}}, actions)
	typeText(h, ctx, "x")
	assert.Empty(t, h.TextInput().Value())

	h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, types.ModeQuery, h.CurrentMode())
}

func TestPagerNeedsResults(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlO}, fakeContext{})
	assert.Empty(t, actions)
}
