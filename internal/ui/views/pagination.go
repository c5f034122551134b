package views

import (
	"fmt"
	"strconv"
	"strings"

	"yubin/internal/ui/coordinator"
)

// PaginationRenderer renders the counter line and the page bar
type PaginationRenderer struct {
	styles *Styles
}

// NewPaginationRenderer creates a new pagination renderer
func NewPaginationRenderer(styles *Styles) *PaginationRenderer {
	return &PaginationRenderer{
		styles: styles,
	}
}

// CounterText returns "N results (start–end)", or "" with nothing to count
func CounterText(v coordinator.ResultView) string {
	if v.TotalResults == 0 {
		return ""
	}
	return fmt.Sprintf("%d results (%d–%d)", v.TotalResults, v.RangeStart, v.RangeEnd)
}

// PageBarText returns the unstyled page bar, e.g. "« ‹ 1 2 [3] 4 5 6 7 … 20 › »  3/20"
func PageBarText(v coordinator.ResultView) string {
	return renderBar(v, func(s string) string { return s }, func(n int) string { return "[" + strconv.Itoa(n) + "]" })
}

// Render returns the styled page bar; a single page needs no bar
func (p *PaginationRenderer) Render(v coordinator.ResultView) string {
	if v.TotalPages <= 1 {
		return ""
	}
	return renderBar(v,
		func(s string) string { return p.styles.PageButton.Render(s) },
		func(n int) string { return p.styles.PageCurrent.Render(" " + strconv.Itoa(n) + " ") },
	)
}

func renderBar(v coordinator.ResultView, button func(string) string, current func(int) string) string {
	if v.TotalPages == 0 {
		return ""
	}

	var parts []string
	if v.CurrentPage > 1 {
		parts = append(parts, button("«"), button("‹"))
	}
	for _, n := range v.PageWindow {
		if n == v.CurrentPage {
			parts = append(parts, current(n))
		} else {
			parts = append(parts, button(strconv.Itoa(n)))
		}
	}
	if v.ShowLastShortcut {
		parts = append(parts, "…", button(strconv.Itoa(v.TotalPages)))
	}
	if v.CurrentPage < v.TotalPages {
		parts = append(parts, button("›"), button("»"))
	}

	return strings.Join(parts, " ") + fmt.Sprintf("  %d/%d", v.CurrentPage, v.TotalPages)
}
