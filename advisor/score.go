package advisor

import (
	"fmt"

	"planter/game"
)

// Context is what every scoring function sees besides the move itself.
type Context struct {
	Self     *game.Board
	Opponent *game.Board
	Turn     int
}

// term is one additive part of a score together with the clause that
// explains it. Scores and explanations are both folded from the same terms so
// they cannot drift apart.
type term struct {
	value  float64
	clause string
}

func sum(terms []term) float64 {
	total := 0.0
	for _, t := range terms {
		total += t.value
	}
	return total
}

// Scorer evaluates candidate actions against a catalog and a set of weights.
// Its methods are pure.
type Scorer struct {
	Catalog *game.Catalog
	Weights Weights
}

// NewScorer returns a scorer over the standard catalog and default weights.
func NewScorer() Scorer {
	return Scorer{Catalog: game.StandardCatalog(), Weights: DefaultWeights()}
}

func (s Scorer) early(turn int) bool {
	return turn <= s.Weights.EarlyTurns
}

func (s Scorer) earlyTerm(turn int) []term {
	if !s.early(turn) {
		return nil
	}
	return []term{{value: s.Weights.EarlyBonus, clause: "early claims shape the whole game"}}
}

func (s Scorer) resourceTerms(ctx Context, r game.Resource) []term {
	w := s.Weights.Resource
	base, _ := s.Catalog.BaseValue(r)
	terms := []term{{value: base, clause: fmt.Sprintf("%s is worth %.1f on its own", r, base)}}

	if r == ctx.Self.StartingResource {
		if r == s.Catalog.WeakResource() {
			terms = append(terms, term{
				value:  w.MatchWeak,
				clause: fmt.Sprintf("matches your starting %s, only a small boost because %s gains little from a duplicate", r, r),
			})
		} else {
			terms = append(terms, term{value: w.MatchStrong, clause: fmt.Sprintf("matches your starting %s", r)})
		}
	}
	if !ctx.Self.HasResource(r) {
		terms = append(terms, term{value: w.Diversify, clause: "adds a new crop type to your island"})
	}
	if r == ctx.Opponent.StartingResource {
		terms = append(terms, term{value: w.Deny, clause: fmt.Sprintf("denies your opponent a second %s", r)})
	}
	return append(terms, s.earlyTerm(ctx.Turn)...)
}

// ScoreResource scores claiming r from the face-up row.
func (s Scorer) ScoreResource(ctx Context, r game.Resource) float64 {
	return sum(s.resourceTerms(ctx, r))
}

func (s Scorer) tokenTerms(ctx Context) []term {
	w := s.Weights.Token
	terms := []term{{value: w.Base, clause: "quarries lower the price of every later building"}}
	terms = append(terms, s.earlyTerm(ctx.Turn)...)

	switch owned := ctx.Self.DiscountTokens; {
	case owned == 0:
		terms = append(terms, term{value: w.First, clause: "your first quarry is the most valuable one"})
	case owned == 1:
		terms = append(terms, term{value: w.Second, clause: "a second quarry still helps"})
	default:
		terms = append(terms, term{
			value:  -w.Penalty * float64(owned-1),
			clause: fmt.Sprintf("you already hold %d quarries, more give diminishing returns", owned),
		})
	}
	return terms
}

// ScoreDiscountToken scores claiming a quarry.
func (s Scorer) ScoreDiscountToken(ctx Context) float64 {
	return sum(s.tokenTerms(ctx))
}

func (s Scorer) buildingTerms(ctx Context, b game.Building) []term {
	if ctx.Self.Owns(b) {
		return []term{{value: NeverRecommend, clause: fmt.Sprintf("you already built %s", b)}}
	}

	w := s.Weights.Building
	def, _ := s.Catalog.Lookup(b)
	terms := []term{{value: def.Value, clause: fmt.Sprintf("%s is worth %.1f on its own", b, def.Value)}}

	if def.Resource != "" {
		if held := ctx.Self.HeldCount(def.Resource); held > 0 {
			terms = append(terms, term{
				value:  w.HeldBonus + w.HeldStep*float64(held-1),
				clause: fmt.Sprintf("you already run %d %s plantation(s) it can process", held, def.Resource),
			})
		} else if def.Resource == ctx.Self.StartingResource {
			terms = append(terms, term{
				value:  w.StartBonus,
				clause: fmt.Sprintf("%s is your starting crop", def.Resource),
			})
		}
	}

	switch def.Category {
	case game.CategoryMarket:
		if n := ctx.Self.DistinctResources(); n >= w.MarketTypes {
			terms = append(terms, term{value: w.MarketBonus, clause: fmt.Sprintf("you hold %d crop types to sell", n)})
		}
	case game.CategoryColonist:
		if s.early(ctx.Turn) {
			terms = append(terms, term{value: w.ColonistBonus, clause: "extra colonists pay off early"})
		}
	}

	if tokens := ctx.Self.DiscountTokens; tokens > 0 {
		terms = append(terms, term{
			value:  w.TokenValue * float64(tokens),
			clause: fmt.Sprintf("your %d quarry discount(s) make it cheaper", tokens),
		})
	}
	if def.Cost > 0 {
		terms = append(terms, term{
			value:  -w.CostPenalty * float64(def.Cost),
			clause: fmt.Sprintf("costs %d doubloon(s)", def.Cost),
		})
	}
	return terms
}

// ScoreBuilding scores purchasing b. Owned buildings score NeverRecommend.
func (s Scorer) ScoreBuilding(ctx Context, b game.Building) float64 {
	return sum(s.buildingTerms(ctx, b))
}

func (s Scorer) noBuildTerms() []term {
	return []term{{value: s.Weights.Building.NoBuildScore, clause: "nothing affordable is worth building right now"}}
}

func (s Scorer) roleBase(role game.Role) float64 {
	w := s.Weights.Roles
	switch role {
	case game.Prospector:
		return w.Prospector
	case game.Craftsman:
		return w.Craftsman
	case game.Mayor:
		return w.Mayor
	case game.Trader:
		return w.Trader
	case game.Captain:
		return w.Captain
	default:
		return 0
	}
}

func (s Scorer) roleTerms(ctx Context, role game.Role) []term {
	terms := []term{{value: s.roleBase(role), clause: roleClause(role)}}

	active := s.Weights.Roles.ActiveBonus
	switch role {
	case game.Mayor:
		if n := len(ctx.Self.OwnedBuildings); n > 0 {
			terms = append(terms, term{value: active, clause: fmt.Sprintf("colonists can staff your %d building(s)", n)})
		}
	case game.Craftsman, game.Trader, game.Captain:
		if n := ctx.Self.DistinctResources(); n >= 2 {
			terms = append(terms, term{value: active, clause: fmt.Sprintf("you have %d crop types to work with", n)})
		}
	}
	return terms
}

func roleClause(role game.Role) string {
	switch role {
	case game.Prospector:
		return fmt.Sprintf("takes %d doubloon from the bank", game.ProspectorBonus)
	case game.Mayor:
		return "brings new colonists to the island"
	case game.Craftsman:
		return "produces goods on staffed plantations"
	case game.Trader:
		return "sells one good to the trading house"
	case game.Captain:
		return "ships goods for victory points"
	default:
		return fmt.Sprintf("%s has no effect on your board", role)
	}
}

// ScoreRole scores taking a secondary role.
func (s Scorer) ScoreRole(ctx Context, role game.Role) float64 {
	return sum(s.roleTerms(ctx, role))
}
