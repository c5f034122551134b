package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Search", []helpEntry{
		{"type", "Search as you type"},
		{"Tab/Shift+Tab", "Switch between zip code, address and furigana"},
		{"Esc", "Clear the query (quit when empty)"},
	}},
	{"Results", []helpEntry{
		{"Ctrl+S", "Cycle sort order"},
		{"Ctrl+P", "Cycle page size (10, 20, 50, 100, 200)"},
		{"Ctrl+O", "Open all results in the pager"},
	}},
	{"Pages", []helpEntry{
		{"PgUp/PgDn", "Previous/next page"},
		{"Ctrl+PgUp/PgDn", "First/last page"},
		{"Alt+1..9", "Go to page"},
	}},
	{"Help", []helpEntry{
		{"↑/↓, j/k", "Scroll this help"},
		{"o", "Open this help in the pager"},
		{"F1/Esc/q", "Close this help"},
	}},
	{"Other", []helpEntry{
		{"F1", "Toggle this help"},
		{"Ctrl+C", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	noteStyle    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noteStyle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// RenderHelpContent renders the help text shown in the popup and the pager
func (r *HelpRenderer) RenderHelpContent() string {
	keyWidth := 0
	for _, s := range helpSections {
		for _, e := range s.entries {
			if w := lipgloss.Width(e.keys); w > keyWidth {
				keyWidth = w
			}
		}
	}

	var help strings.Builder

	help.WriteString(r.titleStyle.Render("Yubin Help"))
	help.WriteString("\n")

	for i, s := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(r.sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, e := range s.entries {
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(e.keys)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", r.keyStyle.Render(e.keys), pad, r.descStyle.Render(e.desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.noteStyle.Render("  Zip codes match from the start; 6008 finds 600-8008"))

	return help.String()
}
