package player

import (
	"testing"

	"planter/advisor"
	"planter/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisorPolicy(t *testing.T) {
	a := advisor.New()
	s := game.NewState(game.You, []game.Resource{game.Coffee, game.Corn, game.Quarry})

	c, ok := NewAdvisorPolicy(a).Choose(s, game.You)
	require.True(t, ok)
	assert.Equal(t, a.Recommend(s)[0], c)
}

func TestPoliciesSkipInapplicableMoves(t *testing.T) {
	s := game.NewState(game.You, nil)
	s.Round.AvailableRoles = game.NewRoleSet(game.Builder, game.Settler)
	s.Round.DiscountTokensRemaining = 0
	s.You.Money = 0

	for _, p := range []Policy{NewAdvisorPolicy(advisor.New()), NewRandomPolicy(advisor.New(), 1)} {
		t.Run(p.Name(), func(t *testing.T) {
			_, ok := p.Choose(s, game.You)
			assert.False(t, ok)
		})
	}
}

func TestRandomPolicyIsDeterministicPerSeed(t *testing.T) {
	s := game.NewState(game.You, []game.Resource{game.Coffee, game.Corn, game.Sugar, game.Quarry})
	pick := func(seed uint64) []string {
		p := NewRandomPolicy(advisor.New(), seed)
		var titles []string
		for i := 0; i < 10; i++ {
			c, ok := p.Choose(s, game.Opponent)
			require.True(t, ok)
			assert.True(t, c.Move.Complete())
			titles = append(titles, c.Title)
		}
		return titles
	}
	assert.Equal(t, pick(7), pick(7))
}

func TestNew(t *testing.T) {
	p, err := New("Random", advisor.New(), 1)
	require.NoError(t, err)
	assert.Equal(t, "random", p.Name())

	p, err = New("", advisor.New(), 1)
	require.NoError(t, err)
	assert.Equal(t, "advisor", p.Name())

	_, err = New("greedy", advisor.New(), 1)
	assert.ErrorContains(t, err, "unknown policy")
}
