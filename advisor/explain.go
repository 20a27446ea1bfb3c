package advisor

import (
	"fmt"
	"strings"

	"planter/game"
)

// explain joins the clauses of terms into one sentence.
func explain(terms []term) string {
	clauses := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.clause != "" {
			clauses = append(clauses, t.clause)
		}
	}
	if len(clauses) == 0 {
		return ""
	}
	text := strings.Join(clauses, "; ")
	return strings.ToUpper(text[:1]) + text[1:] + "."
}

// ExplainResource explains ScoreResource.
func (s Scorer) ExplainResource(ctx Context, r game.Resource) string {
	return explain(s.resourceTerms(ctx, r))
}

// ExplainDiscountToken explains ScoreDiscountToken.
func (s Scorer) ExplainDiscountToken(ctx Context) string {
	return explain(s.tokenTerms(ctx))
}

// ExplainBuilding explains ScoreBuilding.
func (s Scorer) ExplainBuilding(ctx Context, b game.Building) string {
	return explain(s.buildingTerms(ctx, b))
}

// ExplainRole explains ScoreRole.
func (s Scorer) ExplainRole(ctx Context, role game.Role) string {
	return explain(s.roleTerms(ctx, role))
}

func preferenceTerm(weight float64, count int) term {
	if count <= 0 {
		return term{}
	}
	times := "times"
	if count == 1 {
		times = "time"
	}
	return term{
		value:  weight * float64(count),
		clause: fmt.Sprintf("you affirmed this move %d %s before", count, times),
	}
}
