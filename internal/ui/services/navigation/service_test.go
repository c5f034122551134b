package navigation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"yubin/internal/domain"
	"yubin/internal/ui/services/events"
)

func makeRecords(n int) []domain.Record {
	rs := make([]domain.Record, n)
	for i := range rs {
		rs[i] = domain.Record{ZipCode: fmt.Sprintf("600-%04d", i+1)}
	}
	return rs
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(0, 20))
	require.Equal(t, 1, TotalPages(1, 20))
	require.Equal(t, 1, TotalPages(20, 20))
	require.Equal(t, 2, TotalPages(21, 20))
	require.Equal(t, 3, TotalPages(45, 20))
}

func TestFortyFiveMatchesPageSizeTwenty(t *testing.T) {
	rs := makeRecords(45)
	s := NewService(&events.NullBus{}, 20)
	s.SetTotalItems(len(rs))

	require.Equal(t, 3, s.GetTotalPages())
	require.Equal(t, rs[0:20], s.Slice(rs))

	require.Equal(t, 3, s.GoTo(3))
	page := s.Slice(rs)
	require.Len(t, page, 5)
	require.Equal(t, "600-0041", page[0].ZipCode)
	require.Equal(t, "600-0045", page[4].ZipCode)

	start, end := Range(3, 20, 45)
	require.Equal(t, 41, start)
	require.Equal(t, 45, end)
}

func TestPagesCoverResultSetExactlyOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 45, 199, 200, 201} {
		rs := makeRecords(n)
		for _, size := range domain.PageSizes {
			var joined []domain.Record
			for p := 1; p <= TotalPages(n, size); p++ {
				joined = append(joined, Page(rs, size, p)...)
			}
			if n == 0 {
				require.Empty(t, joined)
				continue
			}
			require.Equal(t, rs, joined, "n=%d size=%d", n, size)
		}
	}
}

func TestGoToClamps(t *testing.T) {
	s := NewService(&events.NullBus{}, 10)
	s.SetTotalItems(25)

	require.Equal(t, 1, s.GoTo(-4))
	require.Equal(t, 3, s.GoTo(99))
	require.Equal(t, 2, s.Navigate(DirectionPrev))
	require.Equal(t, 3, s.Navigate(DirectionNext))
	require.Equal(t, 3, s.Navigate(DirectionNext))
	require.Equal(t, 1, s.Navigate(DirectionFirst))
	require.Equal(t, 3, s.Navigate(DirectionLast))

	s.SetTotalItems(0)
	require.Equal(t, 0, s.GetTotalPages())
	require.Equal(t, 1, s.GoTo(5))
}

func TestPageSizeChangeResetsPage(t *testing.T) {
	s := NewService(&events.NullBus{}, 10)
	s.SetTotalItems(100)
	s.GoTo(4)

	require.NoError(t, s.SetPageSize(50))
	require.Equal(t, 1, s.GetCurrentPage())
	require.Equal(t, 2, s.GetTotalPages())

	require.ErrorIs(t, s.SetPageSize(15), domain.ErrInvalidPageSize)
	require.Equal(t, 50, s.GetPageSize())

	require.Equal(t, 100, s.NextPageSize())
	require.Equal(t, 200, s.NextPageSize())
	require.Equal(t, 10, s.NextPageSize())
}

func TestInvalidInitialPageSizeFallsBack(t *testing.T) {
	s := NewService(&events.NullBus{}, 7)
	require.Equal(t, domain.DefaultPageSize, s.GetPageSize())
}

func TestWindow(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, Window(1, 3))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, Window(4, 20))
	require.Equal(t, []int{5, 6, 7, 8, 9, 10, 11}, Window(8, 20))
	require.Equal(t, []int{14, 15, 16, 17, 18, 19, 20}, Window(17, 20))
	require.Equal(t, []int{14, 15, 16, 17, 18, 19, 20}, Window(20, 20))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, Window(5, 6))
	require.Empty(t, Window(1, 0))

	require.True(t, ShowLastShortcut(1, 20))
	require.True(t, ShowLastShortcut(16, 20))
	require.False(t, ShowLastShortcut(17, 20))
	require.False(t, ShowLastShortcut(1, 7))
}

func TestPageEventsPublished(t *testing.T) {
	bus := events.NewBus()
	var pages []PageChangedEvent
	bus.Subscribe("navigation.PageChangedEvent", func(e interface{}) {
		pages = append(pages, e.(PageChangedEvent))
	})

	s := NewService(bus, 10)
	s.SetTotalItems(30)
	s.GoTo(2)
	s.GoTo(2)
	s.GoTo(3)

	require.Equal(t, []PageChangedEvent{{OldPage: 1, NewPage: 2}, {OldPage: 2, NewPage: 3}}, pages)
}
