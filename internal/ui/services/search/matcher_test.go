package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yubin/internal/domain"
)

var kyoto = []domain.Record{
	{ZipCode: "600-8008", Address: "京都府京都市下京区長刀鉾町", Furigana: "ｷｮｳﾄﾌｷｮｳﾄｼｼﾓｷﾞｮｳｸﾅｷﾞﾅﾀﾎﾞｺﾁｮｳ"},
	{ZipCode: "602-0000", Address: "京都府京都市上京区", Furigana: "ｷｮｳﾄﾌｷｮｳﾄｼｶﾐｷﾞｮｳｸ"},
	{ZipCode: "600-8001", Address: "京都府京都市下京区立売西町", Furigana: "ｷｮｳﾄﾌｷｮｳﾄｼｼﾓｷﾞｮｳｸﾀﾃｳﾘﾆｼﾏﾁ"},
	{ZipCode: "6048001", Address: "Kyoto Nakagyo", Furigana: "nakagyo"},
}

func TestZipModeIsPrefixMatch(t *testing.T) {
	assert.True(t, Matches(kyoto[0], "600", domain.ModeZipCode))
	assert.False(t, Matches(kyoto[1], "600", domain.ModeZipCode))
	assert.True(t, Matches(kyoto[0], "6008008", domain.ModeZipCode))
	assert.True(t, Matches(kyoto[0], "600-80", domain.ModeZipCode))
	assert.False(t, Matches(kyoto[0], "8008", domain.ModeZipCode), "substring but not prefix")
	assert.True(t, Matches(kyoto[3], "604-8", domain.ModeZipCode), "record without hyphen")
}

func TestZipModeFoldsFullWidthDigits(t *testing.T) {
	assert.True(t, Matches(kyoto[0], "６００", domain.ModeZipCode))
	assert.Equal(t, "6008008", ZipDigits("〒６００－８００８"))
}

func TestZipModeWithoutDigitsMatchesNothing(t *testing.T) {
	for _, r := range kyoto {
		assert.False(t, Matches(r, "---", domain.ModeZipCode))
		assert.False(t, Matches(r, "abc", domain.ModeZipCode))
	}
	assert.True(t, NewMatcher("---", domain.ModeZipCode).Empty())
}

func TestSubstringModes(t *testing.T) {
	assert.True(t, Matches(kyoto[0], "下京区", domain.ModeAddress))
	assert.False(t, Matches(kyoto[1], "下京区", domain.ModeAddress))
	assert.True(t, Matches(kyoto[0], "  下京区  ", domain.ModeAddress), "query is trimmed")
	assert.True(t, Matches(kyoto[3], "NAKAGYO", domain.ModeAddress), "case-insensitive")
	assert.True(t, Matches(kyoto[3], "Naka", domain.ModeFurigana))
	assert.True(t, Matches(kyoto[1], "ｶﾐｷﾞｮｳ", domain.ModeFurigana))
	assert.False(t, Matches(kyoto[0], "ｶﾐｷﾞｮｳ", domain.ModeFurigana))
}

func TestEmptyQueryMatchesNothing(t *testing.T) {
	for _, mode := range domain.SearchModes {
		for _, q := range []string{"", "   ", "\t　"} {
			assert.False(t, Matches(kyoto[0], q, mode), "mode %s query %q", mode, q)
			assert.True(t, NewMatcher(q, mode).Empty())
		}
	}
}

func TestFormatZipInput(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"6":           "6",
		"600":         "600",
		"6008":        "600-8",
		"6008008":     "600-8008",
		"60080081234": "600-8008",
		"600-8008":    "600-8008",
		"600-80089":   "600-8008",
		"6a0b0c":      "600",
		"６００８":        "600-8",
		"abc":         "",
	}
	for in, want := range cases {
		require.Equal(t, want, FormatZipInput(in), "input %q", in)
	}
}

func TestRunPreservesStoreOrderAndDuplicates(t *testing.T) {
	records := append([]domain.Record{}, kyoto...)
	records = append(records, kyoto[0])

	results, status := Run(records, "600", domain.ModeZipCode)
	require.Equal(t, domain.StatusResults, status)
	require.Equal(t, []domain.Record{kyoto[0], kyoto[2], kyoto[0]}, results)
}

func TestRunStatuses(t *testing.T) {
	results, status := Run(kyoto, "  ", domain.ModeAddress)
	require.Nil(t, results)
	require.Equal(t, domain.StatusIdle, status)

	results, status = Run(kyoto, "999", domain.ModeZipCode)
	require.Nil(t, results)
	require.Equal(t, domain.StatusNoMatches, status)

	results, status = Run(kyoto, "-", domain.ModeZipCode)
	require.Nil(t, results)
	require.Equal(t, domain.StatusIdle, status)
}

func TestRunScenarios(t *testing.T) {
	two := kyoto[:2]

	results, _ := Run(two, "600", domain.ModeZipCode)
	require.Equal(t, []domain.Record{kyoto[0]}, results)

	results, _ = Run(two, "下京区", domain.ModeAddress)
	require.Equal(t, []domain.Record{kyoto[0]}, results)
}

func TestRunProperties(t *testing.T) {
	queries := []string{"6", "60", "600", "6008", "602", "604", "京都", "下京", "ｷｮｳﾄ", "ｼﾓ", "naka", "X"}
	for _, mode := range domain.SearchModes {
		for _, q := range queries {
			first, s1 := Run(kyoto, q, mode)
			second, s2 := Run(kyoto, q, mode)
			require.Equal(t, first, second, "deterministic")
			require.Equal(t, s1, s2)

			if NewMatcher(q, mode).Empty() {
				require.Nil(t, first)
				require.Equal(t, domain.StatusIdle, s1)
				continue
			}

			// soundness and completeness against the predicate
			var want []domain.Record
			for _, r := range kyoto {
				var ok bool
				switch mode {
				case domain.ModeZipCode:
					ok = strings.HasPrefix(ZipDigits(r.ZipCode), ZipDigits(q))
				case domain.ModeAddress:
					ok = strings.Contains(strings.ToLower(r.Address), strings.ToLower(q))
				case domain.ModeFurigana:
					ok = strings.Contains(strings.ToLower(r.Furigana), strings.ToLower(q))
				}
				if ok {
					want = append(want, r)
				}
			}
			require.Equal(t, want, first, "mode %s query %q", mode, q)
		}
	}
}
