package player

import (
	"fmt"
	"strings"

	"planter/advisor"
	"planter/game"

	"golang.org/x/exp/rand"
)

// Policy picks a move for p from the advisor's candidates.
type Policy interface {
	Name() string
	// Choose returns false when p has no applicable move.
	Choose(s game.State, p game.Player) (advisor.Candidate, bool)
}

// applicable drops candidates that would not change the state, such as the
// Builder fallback when nothing is affordable.
func applicable(candidates []advisor.Candidate) []advisor.Candidate {
	out := make([]advisor.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Move.Complete() {
			out = append(out, c)
		}
	}
	return out
}

// AdvisorPolicy always plays the top recommendation.
type AdvisorPolicy struct {
	advisor *advisor.Advisor
}

func NewAdvisorPolicy(a *advisor.Advisor) *AdvisorPolicy {
	return &AdvisorPolicy{advisor: a}
}

func (ap *AdvisorPolicy) Name() string {
	return "advisor"
}

func (ap *AdvisorPolicy) Choose(s game.State, p game.Player) (advisor.Candidate, bool) {
	candidates := applicable(ap.advisor.RecommendFor(s, p))
	if len(candidates) == 0 {
		return advisor.Candidate{}, false
	}
	return candidates[0], true
}

// RandomPolicy plays a uniformly random applicable candidate.
type RandomPolicy struct {
	advisor *advisor.Advisor
	rng     *rand.Rand
}

func NewRandomPolicy(a *advisor.Advisor, seed uint64) *RandomPolicy {
	return &RandomPolicy{
		advisor: a,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (rp *RandomPolicy) Name() string {
	return "random"
}

func (rp *RandomPolicy) Choose(s game.State, p game.Player) (advisor.Candidate, bool) {
	candidates := applicable(rp.advisor.RecommendFor(s, p))
	if len(candidates) == 0 {
		return advisor.Candidate{}, false
	}
	return candidates[rp.rng.Intn(len(candidates))], true
}

// New builds a policy by name.
func New(name string, a *advisor.Advisor, seed uint64) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "advisor", "":
		return NewAdvisorPolicy(a), nil
	case "random":
		return NewRandomPolicy(a, seed), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
