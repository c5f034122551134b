package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yubin/internal/domain"
	"yubin/internal/ui/services/search"
)

const zipColumnWidth = 8

// ResultRenderer renders the result table
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{
		styles: styles,
	}
}

// RenderTable renders one page of records, highlighting the query in the searched column
func (r *ResultRenderer) RenderTable(records []domain.Record, query string, mode domain.SearchMode, width int) string {
	if len(records) == 0 {
		return ""
	}

	addrWidth := 0
	for _, rec := range records {
		if w := lipgloss.Width(rec.Address); w > addrWidth {
			addrWidth = w
		}
	}
	// Leave room for zip, furigana and gaps; long addresses are truncated
	if width > 0 {
		maxAddr := width - zipColumnWidth - 4 - 20
		if maxAddr < 10 {
			maxAddr = 10
		}
		if addrWidth > maxAddr {
			addrWidth = maxAddr
		}
	}

	var lines []string
	header := PadRight("Zip", zipColumnWidth) + "  " + PadRight("Address", addrWidth) + "  " + "Furigana"
	lines = append(lines, r.styles.TableHeader.Render(header))

	query = strings.TrimSpace(query)
	for _, rec := range records {
		address := Truncate(rec.Address, addrWidth)
		addrCell := PadRight(address, addrWidth)
		zipCell := PadRight(rec.ZipCode, zipColumnWidth)
		kanaCell := rec.Furigana

		switch mode {
		case domain.ModeZipCode:
			zipCell = highlightPrefix(zipCell, query, r.styles.Highlight, r.styles.ZipCode)
		case domain.ModeAddress:
			addrCell = highlightMatch(addrCell, query, r.styles.Highlight, lipgloss.NewStyle())
		case domain.ModeFurigana:
			kanaCell = highlightMatch(kanaCell, query, r.styles.Highlight, r.styles.Furigana)
		}
		if mode != domain.ModeZipCode {
			zipCell = r.styles.ZipCode.Render(zipCell)
		}
		if mode != domain.ModeFurigana {
			kanaCell = r.styles.Furigana.Render(kanaCell)
		}

		lines = append(lines, zipCell+"  "+addrCell+"  "+kanaCell)
	}

	return strings.Join(lines, "\n")
}

// highlightPrefix highlights the leading characters of a zip code typed so far
func highlightPrefix(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	n := zipPrefixLen(text, query)
	if n == 0 {
		return normalStyle.Render(text)
	}
	return highlightStyle.Render(text[:n]) + normalStyle.Render(text[n:])
}

// zipPrefixLen returns how many bytes of the formatted zip the query's digits cover,
// hyphens included, or 0 when the digits are not a prefix
func zipPrefixLen(zip, query string) int {
	digits := search.ZipDigits(query)
	if digits == "" || !strings.HasPrefix(search.ZipDigits(zip), digits) {
		return 0
	}
	seen := 0
	for i := 0; i < len(zip); i++ {
		if c := zip[i]; c >= '0' && c <= '9' {
			seen++
			if seen == len(digits) {
				return i + 1
			}
		}
	}
	return 0
}

// highlightMatch highlights the first case-insensitive occurrence of query
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lower-casing can change byte lengths for some scripts; give up on highlighting then
	if index == -1 || len(lowerText) != len(text) || index+len(query) > len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// PadRight pads s with spaces to w terminal cells
func PadRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Truncate cuts s to at most w terminal cells, marking the cut with an ellipsis
func Truncate(s string, w int) string {
	if w <= 0 || lipgloss.Width(s) <= w {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > w-1 {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String() + "…"
}

// PlainTable renders records as aligned columns without styling
func PlainTable(records []domain.Record) string {
	addrWidth := lipgloss.Width("Address")
	for _, rec := range records {
		if w := lipgloss.Width(rec.Address); w > addrWidth {
			addrWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(PadRight("Zip", zipColumnWidth) + "  " + PadRight("Address", addrWidth) + "  Furigana\n")
	for _, rec := range records {
		b.WriteString(PadRight(rec.ZipCode, zipColumnWidth))
		b.WriteString("  ")
		b.WriteString(PadRight(rec.Address, addrWidth))
		b.WriteString("  ")
		b.WriteString(rec.Furigana)
		b.WriteString("\n")
	}
	return b.String()
}
