package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"yubin/internal/domain"
	"yubin/internal/logic"
	"yubin/internal/ui/coordinator"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Result           coordinator.ResultView
	TextInput        string // rendered query box
	Loading          bool
	LoadSource       string
	LoadError        string
	StatusMessage    string
	ShowHelp         bool
	HelpContent      string
	HelpScrollOffset int
	HelpModel        help.Model
	Keys             help.KeyMap
	SpinnerFrame     int
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	results     *ResultRenderer
	pagination  *PaginationRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		results:     NewResultRenderer(styles),
		pagination:  NewPaginationRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		content := r.popupRender.ScrollContent(state.HelpContent, state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopup(content, state.Height, state.Width, r.styles.HelpBox)
	}

	v := state.Result
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderModeSelector(v.Mode))
	content.WriteString("\n")
	content.WriteString(r.styles.Prompt.Render("〒 "))
	content.WriteString(state.TextInput)
	content.WriteString("\n\n")

	// Counter, sort and page size on one line
	var info []string
	if counter := CounterText(v); counter != "" {
		info = append(info, counter)
	}
	info = append(info,
		fmt.Sprintf("Sort: %s", v.SortOrder.Label()),
		fmt.Sprintf("%d per page", v.PageSize),
	)
	content.WriteString(r.styles.Status.Render(strings.Join(info, " • ")))
	content.WriteString("\n\n")

	switch {
	case v.Status == domain.StatusLoadFailed:
		content.WriteString(r.styles.StatusError.Render(v.ErrorMessage))
		if state.LoadError != "" {
			content.WriteString("\n")
			content.WriteString(r.styles.Dim.Render(state.LoadError))
		}
	case v.DataState != logic.StateLoaded && v.ErrorMessage == "":
		content.WriteString(r.styles.StatusLoading.Render("Loading addresses..."))
	case len(v.PageRecords) > 0:
		content.WriteString(r.results.RenderTable(v.PageRecords, v.Query, v.Mode, state.Width-4))
		if bar := r.pagination.Render(v); bar != "" {
			content.WriteString("\n\n")
			content.WriteString(bar)
		}
	case v.ErrorMessage != "":
		content.WriteString(r.styles.StatusWarning.Render(v.ErrorMessage))
	case v.Query == "":
		content.WriteString(r.styles.Dim.Render(placeholderFor(v.Mode)))
	}

	// Status line and key help pinned to the bottom
	var footer []string
	if state.StatusMessage != "" {
		footer = append(footer, r.styles.Status.Render(state.StatusMessage))
	}
	if state.Keys != nil {
		footer = append(footer, r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}
	if len(footer) > 0 {
		currentLines := strings.Count(content.String(), "\n") + 1
		// Account for container padding (1 top, 1 bottom)
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - len(footer); padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(strings.Join(footer, "\n"))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the logo with right-aligned busy indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("yubin")

	var indicators []string
	frame := spinnerFrames[state.SpinnerFrame%len(spinnerFrames)]
	if state.Loading {
		indicators = append(indicators, fmt.Sprintf("%s Loading %s", frame, state.LoadSource))
	}
	if state.Result.IsSearching {
		indicators = append(indicators, fmt.Sprintf("%s Searching", frame))
	}
	if len(indicators) == 0 && state.Result.RecordCount > 0 {
		indicators = append(indicators, fmt.Sprintf("%d addresses", state.Result.RecordCount))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := r.styles.Dim.Render(strings.Join(indicators, " | "))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Account for main container padding
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderModeSelector renders the three search modes with the active one highlighted
func (r *Renderer) renderModeSelector(active domain.SearchMode) string {
	var parts []string
	for _, m := range domain.SearchModes {
		if m == active {
			parts = append(parts, r.styles.SelectorOn.Render(m.Label()))
		} else {
			parts = append(parts, r.styles.SelectorOff.Render(m.Label()))
		}
	}
	return strings.Join(parts, " ")
}

func placeholderFor(mode domain.SearchMode) string {
	switch mode {
	case domain.ModeAddress:
		return "Type part of an address, e.g. 下京区"
	case domain.ModeFurigana:
		return "Type part of the reading, e.g. ｼﾓｷﾞｮｳ"
	default:
		return "Type the start of a zip code, e.g. 600-8008"
	}
}
