package sorting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yubin/internal/domain"
	"yubin/internal/ui/services/events"
)

var records = []domain.Record{
	{ZipCode: "602-0000", Address: "京都市上京区", Furigana: "ｶﾐｷﾞｮｳｸ"},
	{ZipCode: "600-8008", Address: "京都市下京区", Furigana: "ｼﾓｷﾞｮｳｸ"},
	{ZipCode: "604-0000", Address: "京都市中京区", Furigana: "ﾅｶｷﾞｮｳｸ"},
	{ZipCode: "600-0001", Address: "京都市下京区", Furigana: "ｱｲｳ"},
	{ZipCode: "600-8008", Address: "京都市下京区", Furigana: "ｼﾓｷﾞｮｳｸ"},
}

func zips(rs []domain.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ZipCode
	}
	return out
}

func kana(rs []domain.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Furigana
	}
	return out
}

func TestDefaultOrderIsZipAscending(t *testing.T) {
	s := NewService(&events.NullBus{})
	require.Equal(t, domain.SortByZipAsc, s.GetCurrentOrder())

	sorted := s.Sort(records)
	require.Equal(t, []string{"600-0001", "600-8008", "600-8008", "602-0000", "604-0000"}, zips(sorted))
}

func TestFuriganaOrders(t *testing.T) {
	s := NewService(&events.NullBus{})

	asc := s.SortBy(records, domain.SortByFuriganaAsc)
	require.Equal(t, []string{"ｱｲｳ", "ｶﾐｷﾞｮｳｸ", "ｼﾓｷﾞｮｳｸ", "ｼﾓｷﾞｮｳｸ", "ﾅｶｷﾞｮｳｸ"}, kana(asc))

	desc := s.SortBy(records, domain.SortByFuriganaDesc)
	require.Equal(t, []string{"ﾅｶｷﾞｮｳｸ", "ｼﾓｷﾞｮｳｸ", "ｼﾓｷﾞｮｳｸ", "ｶﾐｷﾞｮｳｸ", "ｱｲｳ"}, kana(desc))
}

func TestAddressOrders(t *testing.T) {
	s := NewService(&events.NullBus{})

	// ideographs without a reading tailoring fall back to code point order: 上 < 下 < 中
	asc := s.SortBy(records, domain.SortByAddressAsc)
	require.Equal(t, []string{"602-0000", "600-8008", "600-0001", "600-8008", "604-0000"}, zips(asc))

	desc := s.SortBy(records, domain.SortByAddressDesc)
	require.Equal(t, []string{"604-0000", "600-8008", "600-0001", "600-8008", "602-0000"}, zips(desc))
}

func TestKanaCollatesByReadingNotBytes(t *testing.T) {
	s := NewService(&events.NullBus{})
	katakanaA := domain.Record{Address: "アヤベ"}
	hiraganaKa := domain.Record{Address: "かめおか"}

	// in UTF-8 か sorts before ア; the collator puts the a-row first
	require.Less(t, hiraganaKa.Address, katakanaA.Address)
	require.Equal(t, -1, s.Compare(katakanaA, hiraganaKa, domain.SortByAddressAsc))

	sorted := s.SortBy([]domain.Record{hiraganaKa, katakanaA}, domain.SortByAddressAsc)
	require.Equal(t, "アヤベ", sorted[0].Address)
}

func TestSortIsStableAndDoesNotMutateInput(t *testing.T) {
	s := NewService(&events.NullBus{})
	input := append([]domain.Record{}, records...)

	sorted := s.SortBy(input, domain.SortByAddressAsc)
	require.Equal(t, records, input)

	// the three 下京区 records keep their relative input order
	var tied []string
	for _, r := range sorted {
		if r.Address == "京都市下京区" {
			tied = append(tied, r.ZipCode+"/"+r.Furigana)
		}
	}
	require.Equal(t, []string{"600-8008/ｼﾓｷﾞｮｳｸ", "600-0001/ｱｲｳ", "600-8008/ｼﾓｷﾞｮｳｸ"}, tied)
}

func TestSortIsIdempotentAndConsistent(t *testing.T) {
	s := NewService(&events.NullBus{})
	for _, order := range domain.SortOrders {
		once := s.SortBy(records, order)
		twice := s.SortBy(once, order)
		require.Equal(t, once, twice, "order %s", order)

		for i := 1; i < len(once); i++ {
			require.LessOrEqual(t, s.Compare(once[i-1], once[i], order), 0, "order %s index %d", order, i)
		}
	}
}

func TestDescIsReverseOfAsc(t *testing.T) {
	s := NewService(&events.NullBus{})
	a, b := records[0], records[1]
	require.Equal(t, s.Compare(a, b, domain.SortByAddressAsc), -s.Compare(a, b, domain.SortByAddressDesc))
	require.Equal(t, s.Compare(a, b, domain.SortByFuriganaAsc), -s.Compare(a, b, domain.SortByFuriganaDesc))
}

func TestNextOrderCyclesAndPublishes(t *testing.T) {
	bus := events.NewBus()
	var changes []SortOrderChangedEvent
	bus.Subscribe("sorting.SortOrderChangedEvent", func(e interface{}) {
		changes = append(changes, e.(SortOrderChangedEvent))
	})

	s := NewService(bus)
	for range domain.SortOrders {
		s.NextOrder()
	}
	require.Equal(t, domain.SortByZipAsc, s.GetCurrentOrder())
	require.Len(t, changes, len(domain.SortOrders))
	require.Equal(t, domain.SortByAddressAsc, changes[0].NewOrder)

	require.False(t, s.SetOrder(domain.SortByZipAsc))
	require.Len(t, changes, len(domain.SortOrders))
}
