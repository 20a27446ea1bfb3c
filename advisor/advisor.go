package advisor

import (
	"cmp"
	"fmt"
	"slices"

	"planter/game"
)

// Candidate is one scored, explained option. Candidates are created fresh on
// every Recommend call.
type Candidate struct {
	Kind        game.MoveKind
	Move        game.Move
	Score       float64
	Title       string
	Explanation string
}

type Option func(a *Advisor)

// WithWeights replaces the default weights.
func WithWeights(w Weights) Option {
	return func(a *Advisor) {
		a.scorer.Weights = w
	}
}

// WithCatalog replaces the standard catalog.
func WithCatalog(c *game.Catalog) Option {
	return func(a *Advisor) {
		if c != nil {
			a.scorer.Catalog = c
		}
	}
}

// WithPreferences adds the affirmation bonus read from p. The memory is read,
// never written.
func WithPreferences(p *PreferenceMemory) Option {
	return func(a *Advisor) {
		a.prefs = p
	}
}

// Advisor enumerates, scores and ranks the legal candidates of a state.
type Advisor struct {
	scorer Scorer
	prefs  *PreferenceMemory
}

func New(options ...Option) *Advisor {
	a := &Advisor{scorer: NewScorer()}
	for _, option := range options {
		option(a)
	}
	return a
}

// Scorer exposes the scoring functions the advisor ranks with.
func (a *Advisor) Scorer() Scorer {
	return a.scorer
}

// Recommend ranks the candidates for the advised player.
func (a *Advisor) Recommend(s game.State) []Candidate {
	return a.RecommendFor(s, game.You)
}

// RecommendFor ranks the candidates for p. Preference bonuses only ever
// apply to the advised player.
func (a *Advisor) RecommendFor(s game.State, p game.Player) []Candidate {
	ctx := Context{
		Self:     s.Board(p),
		Opponent: s.Board(p.Other()),
		Turn:     s.Turn.TurnInRound,
	}
	prefs := a.prefs
	if p != game.You {
		prefs = nil
	}

	var candidates []Candidate
	add := func(m game.Move, title string, terms []term) {
		if bonus := preferenceTerm(a.scorer.Weights.PreferenceWeight, prefs.Count(m)); bonus.clause != "" {
			terms = append(terms, bonus)
		}
		candidates = append(candidates, Candidate{
			Kind:        m.Kind(),
			Move:        m,
			Score:       sum(terms),
			Title:       title,
			Explanation: explain(terms),
		})
	}

	roles := s.Round.AvailableRoles
	if roles.Has(game.Settler) {
		for _, r := range s.Round.Offered() {
			m := game.Move{Role: game.Settler, Resource: r}
			add(m, fmt.Sprintf("Settler: take %s", r), a.scorer.resourceTerms(ctx, r))
		}
		if s.Round.DiscountTokensRemaining > 0 {
			m := game.Move{Role: game.Settler, Resource: game.Quarry}
			add(m, "Settler: take a quarry", a.scorer.tokenTerms(ctx))
		}
	}

	if roles.Has(game.Builder) {
		offered := 0
		for _, def := range a.scorer.Catalog.Scored() {
			if def.Cost > ctx.Self.Money || ctx.Self.Owns(def.Name) {
				continue
			}
			m := game.Move{Role: game.Builder, Building: def.Name}
			add(m, fmt.Sprintf("Builder: build %s", def.Name), a.scorer.buildingTerms(ctx, def.Name))
			offered++
		}
		if offered == 0 {
			add(game.Move{Role: game.Builder}, "Builder: no good option", a.scorer.noBuildTerms())
		}
	}

	for _, role := range roles.Ordered() {
		if !role.Secondary() {
			continue
		}
		add(game.Move{Role: role}, role.String(), a.scorer.roleTerms(ctx, role))
	}

	slices.SortStableFunc(candidates, func(x, y Candidate) int {
		return cmp.Compare(y.Score, x.Score)
	})
	return candidates
}

// RecommendMoves is a one-shot Recommend with a fresh advisor.
func RecommendMoves(s game.State, options ...Option) []Candidate {
	return New(options...).Recommend(s)
}

// Limit truncates a ranked list to at most n entries. n <= 0 keeps all.
func Limit(candidates []Candidate, n int) []Candidate {
	if n <= 0 || n >= len(candidates) {
		return candidates
	}
	return candidates[:n]
}
