package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStatsEmptyScope(t *testing.T) {
	stats := buildStats(0, 0, nil, nil, nil, nil)

	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, int64(0), stats.Featured)
	assert.Empty(t, stats.ByCategory)
	assert.Empty(t, stats.ByDifficulty)
	assert.Equal(t, 0, stats.AvgPrepTime)
	assert.Equal(t, 0, stats.AvgCookTime)
}

func TestBuildStatsGrouping(t *testing.T) {
	stats := buildStats(
		7, 2,
		[]groupCount{{ID: "dinner", Count: 4}, {ID: "dessert", Count: 3}},
		[]groupCount{{ID: "easy", Count: 7}},
		[]groupAvg{{Avg: 22.4}},
		[]groupAvg{{Avg: 37.5}},
	)

	assert.Equal(t, int64(7), stats.Total)
	assert.Equal(t, int64(2), stats.Featured)
	assert.Equal(t, map[string]int{"dinner": 4, "dessert": 3}, stats.ByCategory)
	assert.Equal(t, map[string]int{"easy": 7}, stats.ByDifficulty)

	// Averages round to the nearest minute.
	assert.Equal(t, 22, stats.AvgPrepTime)
	assert.Equal(t, 38, stats.AvgCookTime)
}

func TestBuildStatsNoZeroFill(t *testing.T) {
	stats := buildStats(1, 0, []groupCount{{ID: "snack", Count: 1}}, []groupCount{{ID: "expert", Count: 1}}, nil, nil)

	_, hasBreakfast := stats.ByCategory["breakfast"]
	assert.False(t, hasBreakfast, "absent categories must not appear")
	assert.Len(t, stats.ByCategory, 1)
	assert.Len(t, stats.ByDifficulty, 1)
}
