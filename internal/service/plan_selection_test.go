package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanSeed(t *testing.T) {
	assert.Equal(t, int64(1033578643), planSeed("2026-01-13", "Data Structures and Algorithms"))
	assert.Equal(t, planSeed("2026-01-13", "Operating System"), planSeed("2026-01-13", "Operating System"))
	assert.NotEqual(t, planSeed("2026-01-13", "Operating System"), planSeed("2026-01-14", "Operating System"))
}

func TestSeededShuffle(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	got := seededShuffle(ids, 1033578643)

	assert.Equal(t, []string{"b", "e", "h", "c", "g", "a", "d", "f"}, got)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, ids, "input must not be modified")
	assert.Equal(t, got, seededShuffle(ids, 1033578643))
	assert.Empty(t, seededShuffle(nil, 42))
}

func TestSelectPlanQuestionsLimit(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	got := selectPlanQuestions(ids, "2026-01-13", "Data Structures and Algorithms", 3)
	assert.Equal(t, []string{"b", "e", "h"}, got)

	all := selectPlanQuestions(ids, "2026-01-13", "Data Structures and Algorithms", 35)
	assert.ElementsMatch(t, ids, all)
}

func TestPickQuoteAvoidsRecent(t *testing.T) {
	first := func(int) int { return 0 }

	assert.Equal(t, motivationalQuotes[0], pickQuote(nil, first))
	assert.Equal(t, motivationalQuotes[2], pickQuote(motivationalQuotes[:2], first))

	last := func(n int) int { return n - 1 }
	assert.Equal(t, motivationalQuotes[len(motivationalQuotes)-1], pickQuote(motivationalQuotes[:1], last))

	// Every quote used recently: fall back to the full list.
	assert.Equal(t, motivationalQuotes[0], pickQuote(motivationalQuotes, first))
}

func TestCapQuestionIDs(t *testing.T) {
	got := capQuestionIDs([]string{"x", "y", "x"}, 4, []string{"a", "y", "b"}, []string{"c", "d"})
	assert.Equal(t, []string{"x", "y", "a", "b"}, got)

	// Answered ids stay even when they alone exceed the limit.
	got = capQuestionIDs([]string{"x", "y", "z"}, 2, []string{"a"})
	assert.Equal(t, []string{"x", "y", "z"}, got)

	assert.Empty(t, capQuestionIDs(nil, 5))
}

func TestUnionIDs(t *testing.T) {
	assert.Equal(t, []string{"B", "D", "A", "C"}, unionIDs([]string{"B", "D"}, []string{"A", "B", "C"}))
	assert.Equal(t, []string{"a"}, unionIDs([]string{"a", "a"}, nil))
	assert.Empty(t, unionIDs(nil, nil))
}
