package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Record is one postal code / address / reading triple
type Record struct {
	ZipCode  string `json:"zipCode" yaml:"zipCode"`
	Address  string `json:"address" yaml:"address"`
	Furigana string `json:"furigana" yaml:"furigana"`
}

// SearchMode selects which field a query is matched against
type SearchMode int

const (
	ModeZipCode SearchMode = iota
	ModeAddress
	ModeFurigana
)

// SearchModes lists modes in selector order
var SearchModes = []SearchMode{ModeZipCode, ModeAddress, ModeFurigana}

func (m SearchMode) String() string {
	switch m {
	case ModeZipCode:
		return "zipcode"
	case ModeAddress:
		return "address"
	case ModeFurigana:
		return "furigana"
	default:
		return "unknown"
	}
}

// Label is the human readable name shown in the UI
func (m SearchMode) Label() string {
	switch m {
	case ModeZipCode:
		return "Zip code"
	case ModeAddress:
		return "Address"
	case ModeFurigana:
		return "Furigana"
	default:
		return "Unknown"
	}
}

// ParseSearchMode parses a mode name as used in config and flags
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zipcode", "zip", "":
		return ModeZipCode, nil
	case "address":
		return ModeAddress, nil
	case "furigana", "kana":
		return ModeFurigana, nil
	}
	return ModeZipCode, fmt.Errorf("unknown search mode %q", s)
}

// SortOrder is one of the five result orderings
type SortOrder int

const (
	SortByZipAsc SortOrder = iota
	SortByAddressAsc
	SortByAddressDesc
	SortByFuriganaAsc
	SortByFuriganaDesc
)

// SortOrders lists orders in selector order
var SortOrders = []SortOrder{
	SortByZipAsc,
	SortByAddressAsc,
	SortByAddressDesc,
	SortByFuriganaAsc,
	SortByFuriganaDesc,
}

func (o SortOrder) String() string {
	switch o {
	case SortByZipAsc:
		return "zip"
	case SortByAddressAsc:
		return "address-asc"
	case SortByAddressDesc:
		return "address-desc"
	case SortByFuriganaAsc:
		return "furigana-asc"
	case SortByFuriganaDesc:
		return "furigana-desc"
	default:
		return "unknown"
	}
}

// Label is the human readable name shown in the UI
func (o SortOrder) Label() string {
	switch o {
	case SortByZipAsc:
		return "Zip code"
	case SortByAddressAsc:
		return "Address ↑"
	case SortByAddressDesc:
		return "Address ↓"
	case SortByFuriganaAsc:
		return "Furigana ↑"
	case SortByFuriganaDesc:
		return "Furigana ↓"
	default:
		return "Unknown"
	}
}

// ParseSortOrder parses an order name as used in config and flags
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zip", "default", "":
		return SortByZipAsc, nil
	case "address-asc", "address":
		return SortByAddressAsc, nil
	case "address-desc":
		return SortByAddressDesc, nil
	case "furigana-asc", "furigana":
		return SortByFuriganaAsc, nil
	case "furigana-desc":
		return SortByFuriganaDesc, nil
	}
	return SortByZipAsc, fmt.Errorf("unknown sort order %q", s)
}

// PageSizes are the allowed page sizes
var PageSizes = []int{10, 20, 50, 100, 200}

// DefaultPageSize is used when nothing else is configured
const DefaultPageSize = 20

// ValidPageSize reports whether size is one of PageSizes
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Status is what the engine reports to the rendering side
type Status int

const (
	StatusIdle       Status = iota // no active search
	StatusNotReady                 // dataset not loaded yet
	StatusSearching                // debounce pending or search running
	StatusResults                  // last search found records
	StatusNoMatches                // last search found nothing
	StatusLoadFailed               // dataset could not be loaded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusNotReady:
		return "not-ready"
	case StatusSearching:
		return "searching"
	case StatusResults:
		return "results"
	case StatusNoMatches:
		return "no-matches"
	case StatusLoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// User visible messages
const (
	MsgLoadFailed = "Failed to load the address dataset. Restart to try again."
	MsgNoMatches  = "No addresses match the search."
	MsgNotReady   = "Address data is still loading."
)

var (
	ErrDataNotReady    = errors.New("address data not ready")
	ErrStoreSealed     = errors.New("record store already loaded")
	ErrInvalidPageSize = errors.New("invalid page size")
)
