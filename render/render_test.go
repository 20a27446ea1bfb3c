package render

import (
	"strings"
	"testing"

	"planter/advisor"
	"planter/game"

	"github.com/stretchr/testify/assert"
)

func TestCandidates(t *testing.T) {
	s := game.NewState(game.You, []game.Resource{game.Coffee, game.Corn})
	out := Candidates(advisor.Limit(advisor.RecommendMoves(s), 3))

	assert.Contains(t, out, "Recommended moves")
	assert.Contains(t, out, " 1. [")
	assert.Contains(t, out, " 3. [")
	assert.NotContains(t, out, " 4. [")
	assert.Contains(t, out, "["+strings.Repeat("=", barWidth)+"]", "The best entry should fill its bar")
}

func TestCandidatesEmpty(t *testing.T) {
	assert.Contains(t, Candidates(nil), "No moves available.")
}

func TestScoreBar(t *testing.T) {
	s := newStyles()
	assert.Contains(t, scoreBar(1, 2, s), strings.Repeat("=", barWidth/2)+strings.Repeat("-", barWidth/2))
	assert.Contains(t, scoreBar(-3, 2, s), strings.Repeat("-", barWidth))
	assert.Contains(t, scoreBar(advisor.NeverRecommend, -1, s), strings.Repeat("-", barWidth))
}

func TestState(t *testing.T) {
	c := game.StandardCatalog()
	s := game.NewState(game.Opponent, []game.Resource{game.Coffee, game.Sugar})
	s.Apply(game.Opponent, game.Move{Role: game.Settler, Resource: game.Coffee}, c)

	out := State(s)
	assert.Contains(t, out, "round 1, turn 2, you to pick")
	assert.Contains(t, out, "Opponent (first player)")
	assert.Contains(t, out, "Indigo, Coffee")
	assert.Contains(t, out, "-, Sugar")
	assert.Contains(t, out, "Settler by opponent")
	assert.Contains(t, out, "last role: Settler")
}

func TestCatalog(t *testing.T) {
	out := Catalog(game.StandardCatalog())
	assert.Contains(t, out, "Coffee Roaster")
	assert.Contains(t, out, "City Hall")
	assert.Contains(t, out, "base value 5.0")
}

func TestPreferences(t *testing.T) {
	assert.Contains(t, Preferences(nil), "None yet.")

	p := advisor.NewPreferenceMemory()
	p.Affirm(game.Move{Role: game.Settler, Resource: game.Quarry})
	p.Affirm(game.Move{Role: game.Settler, Resource: game.Quarry})
	assert.Contains(t, Preferences(p.Snapshot()), "Settler: take a quarry: x2")
}
