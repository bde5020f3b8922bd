package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationSupersedes(t *testing.T) {
	var g Generation

	first := g.Begin()
	assert.True(t, g.Latest(first))

	second := g.Begin()
	assert.False(t, g.Latest(first))
	assert.True(t, g.Latest(second))
}

func TestGenerationScopedPerView(t *testing.T) {
	var charts, leaderboard Generation

	chartsGen := charts.Begin()
	leaderboardGen := leaderboard.Begin()

	// overlapping recomputations of different views stay independently live
	assert.True(t, charts.Latest(chartsGen))
	assert.True(t, leaderboard.Latest(leaderboardGen))

	// a newer recomputation supersedes only its own view
	charts.Begin()
	assert.False(t, charts.Latest(chartsGen))
	assert.True(t, leaderboard.Latest(leaderboardGen))
}
