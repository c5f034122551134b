package sorting

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"yubin/internal/domain"
	"yubin/internal/ui/services/events"
)

// Service handles sorting logic.
// A Service is not safe for concurrent use; the collator keeps internal buffers.
type Service struct {
	state    *State
	bus      events.EventBus
	collator *collate.Collator
}

// NewService creates a new sorting service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			CurrentOrder: domain.SortByZipAsc, // Default
		},
		bus:      bus,
		collator: collate.New(language.Japanese),
	}
}

// GetCurrentOrder returns the current sort order
func (s *Service) GetCurrentOrder() domain.SortOrder {
	return s.state.CurrentOrder
}

// SetOrder sets the sort order, reporting whether it changed
func (s *Service) SetOrder(order domain.SortOrder) bool {
	if order == s.state.CurrentOrder {
		return false
	}

	oldOrder := s.state.CurrentOrder
	s.state.CurrentOrder = order

	s.bus.Publish(SortOrderChangedEvent{
		OldOrder: oldOrder,
		NewOrder: order,
	})
	return true
}

// NextOrder cycles to the next sort order
func (s *Service) NextOrder() domain.SortOrder {
	currentIndex := 0
	for i, order := range domain.SortOrders {
		if order == s.state.CurrentOrder {
			currentIndex = i
			break
		}
	}

	next := domain.SortOrders[(currentIndex+1)%len(domain.SortOrders)]
	s.SetOrder(next)
	return next
}

// Sort returns records ordered by the current order
func (s *Service) Sort(records []domain.Record) []domain.Record {
	return s.SortBy(records, s.state.CurrentOrder)
}

// SortBy returns a sorted copy of records. Ties keep their input order.
func (s *Service) SortBy(records []domain.Record, order domain.SortOrder) []domain.Record {
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)

	field, desc := keyFor(order)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := field(sorted[i]), field(sorted[j])
		if desc {
			a, b = b, a
		}
		return s.collator.CompareString(a, b) < 0
	})
	return sorted
}

// Compare compares two records under order, returning -1, 0 or 1
func (s *Service) Compare(a, b domain.Record, order domain.SortOrder) int {
	field, desc := keyFor(order)
	if desc {
		a, b = b, a
	}
	return s.collator.CompareString(field(a), field(b))
}

func keyFor(order domain.SortOrder) (func(domain.Record) string, bool) {
	switch order {
	case domain.SortByAddressAsc:
		return addressKey, false
	case domain.SortByAddressDesc:
		return addressKey, true
	case domain.SortByFuriganaAsc:
		return furiganaKey, false
	case domain.SortByFuriganaDesc:
		return furiganaKey, true
	default:
		return zipKey, false
	}
}

func zipKey(r domain.Record) string      { return r.ZipCode }
func addressKey(r domain.Record) string  { return r.Address }
func furiganaKey(r domain.Record) string { return r.Furigana }
