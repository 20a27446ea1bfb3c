package engine

import (
	"sync"
	"testing"

	"planter/advisor"
	"planter/game"
	"planter/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(options ...Option) *Session {
	options = append([]Option{WithFaceUp(game.Coffee, game.Sugar, game.Corn, game.Quarry)}, options...)
	return NewSession(options...)
}

func TestNewSession(t *testing.T) {
	s := newTestSession()
	state := s.State()

	assert.Equal(t, game.Indigo, state.You.StartingResource)
	assert.Equal(t, game.Corn, state.Opponent.StartingResource)
	assert.Equal(t, game.QuarryPool, state.Round.DiscountTokensRemaining)
	assert.Equal(t, game.NewTurnCounter(), state.Turn)
	assert.Equal(t, game.You, s.ActingPlayer())

	t.Run("opponent holding first player starts with indigo", func(t *testing.T) {
		s := newTestSession(WithHolder(game.Opponent))
		state := s.State()
		assert.Equal(t, game.Corn, state.You.StartingResource)
		assert.Equal(t, game.Indigo, state.Opponent.StartingResource)
		assert.Equal(t, game.Opponent, s.ActingPlayer())
	})
}

func TestApplyChosenMove(t *testing.T) {
	s := newTestSession()

	effect, ok := s.ApplyChosenMove(game.Settler, game.Coffee, game.SmallMarket)
	require.True(t, ok)
	assert.Equal(t, game.ClaimResource, effect.Kind)
	assert.Equal(t, 0, effect.Slot)

	state := s.State()
	assert.Equal(t, []game.Resource{game.Coffee}, state.You.ExtraResources)
	assert.Empty(t, state.You.OwnedBuildings, "Settler should ignore the building field")
	assert.False(t, state.Round.AvailableRoles.Has(game.Settler))
	assert.Equal(t, 2, state.Turn.TurnInRound)
	assert.Equal(t, game.Opponent, s.ActingPlayer())

	t.Run("missing building is a no-op", func(t *testing.T) {
		before := s.State()
		_, ok := s.ApplyChosenMove(game.Builder, game.ResourceNone, game.NoBuilding)
		assert.False(t, ok)
		assert.Equal(t, before, s.State())
	})

	t.Run("unknown role is a no-op", func(t *testing.T) {
		before := s.State()
		_, ok := s.ApplyChosenMove(game.RoleUnknown, game.Coffee, game.NoBuilding)
		assert.False(t, ok)
		assert.Equal(t, before, s.State())
	})
}

func TestApplyOpponentRole(t *testing.T) {
	s := newTestSession()
	s.ApplyChosenMove(game.Mayor, game.ResourceNone, game.NoBuilding)

	_, ok := s.ApplyOpponentRole(game.Builder, game.ResourceNone, game.SmallIndigoPlant)
	require.True(t, ok)

	state := s.State()
	assert.Equal(t, []game.Building{game.SmallIndigoPlant}, state.Opponent.OwnedBuildings)
	assert.Equal(t, 2, state.Opponent.Money)
	assert.Equal(t, game.Builder, state.OpponentLastRole)
	assert.Equal(t, []game.TakenRole{
		{By: game.You, Role: game.Mayor},
		{By: game.Opponent, Role: game.Builder},
	}, state.Round.Taken)
}

func TestRecordAffirmedPreference(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, 1, s.RecordAffirmedPreference(game.Captain, game.ResourceNone, game.NoBuilding))
	assert.Equal(t, 2, s.RecordAffirmedPreference(game.Captain, game.Coffee, game.NoBuilding),
		"Secondary roles should ignore the resource field")

	var captain advisor.Candidate
	for _, c := range s.Recommend() {
		if c.Move.Role == game.Captain {
			captain = c
		}
	}
	w := advisor.DefaultWeights()
	assert.InDelta(t, w.Roles.Captain+2*w.PreferenceWeight, captain.Score, 1e-9)
	assert.Contains(t, captain.Explanation, "affirmed this move 2 times")
	assert.Equal(t, []advisor.PreferenceEntry{{Key: advisor.PreferenceKey{Role: game.Captain}, Count: 2}}, s.Preferences())
}

// Scenario E: a reset returns every count to its initial value.
func TestResetSession(t *testing.T) {
	s := newTestSession()
	s.ApplyChosenMove(game.Settler, game.Quarry, game.NoBuilding)
	s.ApplyOpponentRole(game.Builder, game.ResourceNone, game.Hacienda)
	s.ApplyChosenMove(game.Prospector, game.ResourceNone, game.NoBuilding)
	s.RecordAffirmedPreference(game.Settler, game.Quarry, game.NoBuilding)
	s.StartRound([]game.Resource{game.Tobacco})

	s.ResetSession(game.You)

	state := s.State()
	assert.Equal(t, game.NewBoard(game.Indigo), state.You)
	assert.Equal(t, game.NewBoard(game.Corn), state.Opponent)
	assert.Equal(t, game.QuarryPool, state.Round.DiscountTokensRemaining)
	assert.Equal(t, []game.Resource{game.Coffee, game.Sugar, game.Corn, game.Quarry}, state.Round.FaceUp)
	assert.Empty(t, state.Round.Taken)
	assert.Equal(t, game.NewTurnCounter(), state.Turn)
	assert.Equal(t, game.RoleUnknown, state.OpponentLastRole)
	assert.Empty(t, s.Preferences())

	t.Run("reset can hand first player to the opponent", func(t *testing.T) {
		s.ResetSession(game.Opponent)
		assert.Equal(t, game.Opponent, s.ActingPlayer())
		assert.Equal(t, game.Indigo, s.State().Opponent.StartingResource)
	})
}

func TestStartRound(t *testing.T) {
	s := newTestSession()
	s.ApplyChosenMove(game.Settler, game.Quarry, game.NoBuilding)
	s.ApplyOpponentRole(game.Mayor, game.ResourceNone, game.NoBuilding)

	s.StartRound([]game.Resource{game.Tobacco, game.Indigo})

	state := s.State()
	assert.Equal(t, 2, state.Turn.Round)
	assert.Equal(t, 1, state.Turn.TurnInRound)
	assert.Len(t, state.Round.AvailableRoles, len(game.AllRoles()))
	assert.Equal(t, []game.Resource{game.Tobacco, game.Indigo}, state.Round.FaceUp)
	assert.Equal(t, game.QuarryPool-1, state.Round.DiscountTokensRemaining)
	assert.Equal(t, 1, state.You.DiscountTokens)
}

func TestRoundNumberNeverAutoAdvances(t *testing.T) {
	s := newTestSession()
	for i, role := range game.AllRoles() {
		p := game.ActingPlayer(game.You, i+1)
		if p == game.You {
			s.ApplyChosenMove(role, game.Coffee, game.SmallMarket)
		} else {
			s.ApplyOpponentRole(role, game.Coffee, game.SmallMarket)
		}
	}
	state := s.State()
	assert.Equal(t, 1, state.Turn.Round)
	assert.Equal(t, game.RoundComplete, state.Turn.TurnInRound)
}

func TestRecommendMovesLeavesSessionUntouched(t *testing.T) {
	s := newTestSession()
	before := s.State()

	external := game.NewState(game.Opponent, []game.Resource{game.Tobacco})
	external.Turn.TurnInRound = 2
	candidates := s.RecommendMoves(external)

	require.NotEmpty(t, candidates)
	assert.Equal(t, before, s.State())
	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.Title
	}
	assert.Contains(t, titles, "Settler: take Tobacco")
	assert.NotContains(t, titles, "Settler: take Coffee")
}

func TestLoad(t *testing.T) {
	s := newTestSession()
	external := game.NewState(game.Opponent, []game.Resource{game.Sugar})
	external.You.Money = -4
	external.Turn.TurnInRound = 3

	s.Load(external)

	state := s.State()
	assert.Equal(t, 0, state.You.Money)
	assert.Equal(t, 3, state.Turn.TurnInRound)
	assert.Equal(t, game.Opponent, s.ActingPlayer(), "Odd turns belong to the holder")

	external.Round.FaceUp[0] = game.Coffee
	assert.Equal(t, game.Sugar, s.State().Round.FaceUp[0], "Load should copy the state")
}

func TestSessionMetrics(t *testing.T) {
	s := newTestSession(WithCollector(metrics.NewCollector()))

	top := s.Recommend()[0]
	s.ApplyChosenMove(top.Move.Role, top.Move.Resource, top.Move.Building)
	s.ApplyOpponentRole(game.Captain, game.ResourceNone, game.NoBuilding)
	s.RecordAffirmedPreference(game.Mayor, game.ResourceNone, game.NoBuilding)

	m := s.Metrics()
	assert.Equal(t, 1, m.Recommendations)
	assert.Equal(t, 1, m.Moves)
	assert.Equal(t, 1, m.OpponentMoves)
	assert.Equal(t, 1, m.Affirmations)
}

func TestSessionConcurrentAccess(t *testing.T) {
	s := newTestSession()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Recommend()
			s.RecordAffirmedPreference(game.Trader, game.ResourceNone, game.NoBuilding)
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, s.Preferences()[0].Count)
}

func TestRankOf(t *testing.T) {
	candidates := []advisor.Candidate{
		{Move: game.Move{Role: game.Mayor}, Score: 3},
		{Move: game.Move{Role: game.Settler, Resource: game.Coffee}, Score: 2},
	}
	score, rank := rankOf(candidates, game.Move{Role: game.Settler, Resource: game.Coffee})
	assert.Equal(t, 2.0, score)
	assert.Equal(t, 2, rank)

	_, rank = rankOf(candidates, game.Move{Role: game.Trader})
	assert.Equal(t, 0, rank)
}
