package advisor

import (
	"fmt"
	"testing"

	"planter/game"

	"github.com/stretchr/testify/require"
)

func boards(selfStart, oppStart game.Resource) (*game.Board, *game.Board) {
	self := game.NewBoard(selfStart)
	opp := game.NewBoard(oppStart)
	return &self, &opp
}

func TestScoreResource(t *testing.T) {
	s := NewScorer()
	w := s.Weights

	t.Run("matches the documented formula for every bonus combination", func(t *testing.T) {
		for _, selfStart := range game.Plantations() {
			for _, oppStart := range game.Plantations() {
				for _, extras := range [][]game.Resource{nil, {game.Coffee}, {game.Sugar, game.Corn}} {
					for _, turn := range []int{1, 2, 3, 6} {
						for _, r := range append(game.Plantations(), game.ResourceUnknown) {
							self, opp := boards(selfStart, oppStart)
							self.ExtraResources = extras
							ctx := Context{Self: self, Opponent: opp, Turn: turn}

							base, _ := s.Catalog.BaseValue(r)
							want := base
							if r == selfStart {
								if r == game.Corn {
									want += w.Resource.MatchWeak
								} else {
									want += w.Resource.MatchStrong
								}
							}
							if !self.HasResource(r) {
								want += w.Resource.Diversify
							}
							if r == oppStart {
								want += w.Resource.Deny
							}
							if turn <= w.EarlyTurns {
								want += w.EarlyBonus
							}

							name := fmt.Sprintf("%s start=%s opp=%s extras=%v turn=%d", r, selfStart, oppStart, extras, turn)
							require.InDelta(t, want, s.ScoreResource(ctx, r), 1e-9, name)
							require.GreaterOrEqual(t, s.ScoreResource(ctx, r), base, name)
						}
					}
				}
			}
		}
	})

	t.Run("weak starting resource earns a smaller duplicate bonus", func(t *testing.T) {
		self, opp := boards(game.Corn, game.Coffee)
		weak := s.ScoreResource(Context{Self: self, Opponent: opp, Turn: 5}, game.Corn)

		self, opp = boards(game.Indigo, game.Coffee)
		strong := s.ScoreResource(Context{Self: self, Opponent: opp, Turn: 5}, game.Indigo)

		base, _ := s.Catalog.BaseValue(game.Corn)
		require.InDelta(t, base+w.Resource.MatchWeak, weak, 1e-9)
		require.Less(t, weak-2, strong-3, "Weak match bonus should be smaller than the strong one")
	})

	t.Run("unknown resource scores only its bonuses", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		got := s.ScoreResource(Context{Self: self, Opponent: opp, Turn: 6}, game.ResourceUnknown)
		require.InDelta(t, w.Resource.Diversify, got, 1e-9)
	})
}

func TestScenarioStartingResourceOutranksDenial(t *testing.T) {
	s := game.NewState(game.You, []game.Resource{game.Indigo, game.Corn, game.ResourceNone})
	require.Equal(t, game.Indigo, s.You.StartingResource)
	require.Equal(t, game.Corn, s.Opponent.StartingResource)

	scorer := NewScorer()
	ctx := Context{Self: &s.You, Opponent: &s.Opponent, Turn: 1}

	own := scorer.ScoreResource(ctx, game.Indigo)
	deny := scorer.ScoreResource(ctx, game.Corn)

	require.Greater(t, own, deny, "Claiming the starting resource should beat denying the opponent")
	require.Contains(t, scorer.ExplainResource(ctx, game.Indigo), "matches your starting Indigo")
	require.NotContains(t, scorer.ExplainResource(ctx, game.Corn), "matches your starting")
	require.Contains(t, scorer.ExplainResource(ctx, game.Corn), "denies your opponent a second Corn")
}

func TestScoreDiscountToken(t *testing.T) {
	s := NewScorer()

	t.Run("first quarry early beats a third quarry late", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		first := s.ScoreDiscountToken(Context{Self: self, Opponent: opp, Turn: 2})

		self.DiscountTokens = 2
		third := s.ScoreDiscountToken(Context{Self: self, Opponent: opp, Turn: 5})

		require.InDelta(t, 4.0+1.0+2.0, first, 1e-9)
		require.InDelta(t, 4.0-1.5, third, 1e-9)
		require.Greater(t, first, third)
	})

	t.Run("marginal value strictly decreases with tokens owned", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		previous := s.ScoreDiscountToken(Context{Self: self, Opponent: opp, Turn: 4})
		for owned := 1; owned <= 6; owned++ {
			self.DiscountTokens = owned
			got := s.ScoreDiscountToken(Context{Self: self, Opponent: opp, Turn: 4})
			require.Less(t, got, previous, "owned=%d", owned)
			previous = got
		}
	})

	t.Run("explanation follows the owned count", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		require.Contains(t, s.ExplainDiscountToken(Context{Self: self, Opponent: opp, Turn: 1}), "first quarry")
		self.DiscountTokens = 1
		require.Contains(t, s.ExplainDiscountToken(Context{Self: self, Opponent: opp, Turn: 4}), "second quarry")
		self.DiscountTokens = 3
		require.Contains(t, s.ExplainDiscountToken(Context{Self: self, Opponent: opp, Turn: 4}), "diminishing returns")
	})
}

func TestScoreBuilding(t *testing.T) {
	s := NewScorer()

	t.Run("owned building is never recommended", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		self.OwnedBuildings = []game.Building{game.SmallMarket}
		ctx := Context{Self: self, Opponent: opp, Turn: 1}

		require.Equal(t, NeverRecommend, s.ScoreBuilding(ctx, game.SmallMarket))
		require.Contains(t, s.ExplainBuilding(ctx, game.SmallMarket), "already built")
	})

	t.Run("production synergy scales with held plantations", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		self.ExtraResources = []game.Resource{game.Indigo, game.Indigo}
		self.DiscountTokens = 1
		ctx := Context{Self: self, Opponent: opp, Turn: 4}

		require.InDelta(t, 3.5+(3.0+1.0)+0.5-0.4*3, s.ScoreBuilding(ctx, game.IndigoPlant), 1e-9)
		require.Contains(t, s.ExplainBuilding(ctx, game.IndigoPlant), "you already run 2 Indigo")
	})

	t.Run("starting resource earns the smaller synergy", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		ctx := Context{Self: self, Opponent: opp, Turn: 4}

		require.InDelta(t, 3.0+1.5-0.4, s.ScoreBuilding(ctx, game.SmallIndigoPlant), 1e-9)
		require.Contains(t, s.ExplainBuilding(ctx, game.SmallIndigoPlant), "Indigo is your starting crop")
	})

	t.Run("market needs two crop types", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		ctx := Context{Self: self, Opponent: opp, Turn: 4}
		single := s.ScoreBuilding(ctx, game.SmallMarket)

		self.ExtraResources = []game.Resource{game.Corn}
		double := s.ScoreBuilding(ctx, game.SmallMarket)

		require.InDelta(t, 2.5-0.4, single, 1e-9)
		require.InDelta(t, 2.5+2.0-0.4, double, 1e-9)
		require.Contains(t, s.ExplainBuilding(ctx, game.SmallMarket), "2 crop types to sell")
	})

	t.Run("colonist building is worth more early", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		early := s.ScoreBuilding(Context{Self: self, Opponent: opp, Turn: 1}, game.Hospice)
		late := s.ScoreBuilding(Context{Self: self, Opponent: opp, Turn: 3}, game.Hospice)

		require.InDelta(t, 1.5, early-late, 1e-9)
	})

	t.Run("unknown building scores only its bonuses", func(t *testing.T) {
		self, opp := boards(game.Indigo, game.Corn)
		require.Zero(t, s.ScoreBuilding(Context{Self: self, Opponent: opp, Turn: 4}, "Lighthouse"))
	})
}

func TestScoreRole(t *testing.T) {
	s := NewScorer()
	self, opp := boards(game.Indigo, game.Corn)
	ctx := Context{Self: self, Opponent: opp, Turn: 1}

	require.InDelta(t, 2.0, s.ScoreRole(ctx, game.Prospector), 1e-9)
	require.InDelta(t, 1.5, s.ScoreRole(ctx, game.Mayor), 1e-9)

	self.OwnedBuildings = []game.Building{game.Hospice}
	self.ExtraResources = []game.Resource{game.Coffee}
	require.InDelta(t, 2.5, s.ScoreRole(ctx, game.Mayor), 1e-9)
	require.InDelta(t, 2.8, s.ScoreRole(ctx, game.Craftsman), 1e-9)
	require.InDelta(t, 2.0, s.ScoreRole(ctx, game.Prospector), 1e-9, "Prospector never gets the activity bonus")
	require.Contains(t, s.ExplainRole(ctx, game.Craftsman), "2 crop types")
}

func TestExplanationsArePure(t *testing.T) {
	s := NewScorer()
	self, opp := boards(game.Indigo, game.Corn)
	self.ExtraResources = []game.Resource{game.Sugar}
	self.DiscountTokens = 2
	ctx := Context{Self: self, Opponent: opp, Turn: 2}

	require.Equal(t, s.ExplainResource(ctx, game.Coffee), s.ExplainResource(ctx, game.Coffee))
	require.Equal(t, s.ExplainDiscountToken(ctx), s.ExplainDiscountToken(ctx))
	require.Equal(t, s.ExplainBuilding(ctx, game.SugarMill), s.ExplainBuilding(ctx, game.SugarMill))
	require.Equal(t, s.ExplainRole(ctx, game.Trader), s.ExplainRole(ctx, game.Trader))

	explanation := s.ExplainResource(ctx, game.Coffee)
	require.Regexp(t, `^[A-Z].*\.$`, explanation)
	require.Contains(t, explanation, "adds a new crop type")
	require.Contains(t, explanation, "early claims")
}
