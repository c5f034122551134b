package search

import (
	"strings"

	"golang.org/x/text/width"

	"yubin/internal/domain"
)

// Matcher tests records against one prepared query
type Matcher struct {
	mode   domain.SearchMode
	digits string // zip mode: cleaned query digits
	needle string // address/furigana mode: lower-cased trimmed query
}

// NewMatcher prepares query for repeated matching in mode
func NewMatcher(query string, mode domain.SearchMode) Matcher {
	q := strings.TrimSpace(query)
	m := Matcher{mode: mode}
	if q == "" {
		return m
	}
	if mode == domain.ModeZipCode {
		m.digits = ZipDigits(q)
	} else {
		m.needle = strings.ToLower(q)
	}
	return m
}

// Empty reports whether the query can match nothing and means "no active search"
func (m Matcher) Empty() bool {
	return m.digits == "" && m.needle == ""
}

// Match reports whether r matches the prepared query
func (m Matcher) Match(r domain.Record) bool {
	if m.Empty() {
		return false
	}
	switch m.mode {
	case domain.ModeZipCode:
		return strings.HasPrefix(ZipDigits(r.ZipCode), m.digits)
	case domain.ModeAddress:
		return strings.Contains(strings.ToLower(r.Address), m.needle)
	case domain.ModeFurigana:
		return strings.Contains(strings.ToLower(r.Furigana), m.needle)
	}
	return false
}

// Matches reports whether a single record matches query in mode
func Matches(r domain.Record, query string, mode domain.SearchMode) bool {
	return NewMatcher(query, mode).Match(r)
}

// ZipDigits returns only the ASCII digits of s, after folding full-width digits
func ZipDigits(s string) string {
	folded := width.Fold.String(s)
	var b strings.Builder
	b.Grow(len(folded))
	for i := 0; i < len(folded); i++ {
		if c := folded[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatZipInput normalizes typed zip code input to the XXX-XXXX shape.
// Only digits and hyphens survive; a hyphen is inserted after the third digit
// when none was typed, and the result is capped at 8 characters.
func FormatZipInput(raw string) string {
	folded := width.Fold.String(raw)
	var b strings.Builder
	for i := 0; i < len(folded); i++ {
		if c := folded[i]; (c >= '0' && c <= '9') || c == '-' {
			b.WriteByte(c)
		}
	}
	cleaned := b.String()

	formatted := cleaned
	if len(cleaned) > 3 && !strings.Contains(cleaned, "-") {
		end := len(cleaned)
		if end > 7 {
			end = 7
		}
		formatted = cleaned[:3] + "-" + cleaned[3:end]
	}
	if len(formatted) > 8 {
		formatted = formatted[:8]
	}
	return formatted
}
