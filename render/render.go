package render

import (
	"fmt"
	"math"
	"strings"

	"planter/advisor"
	"planter/game"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 16

// Candidates renders a ranked list with a score bar scaled to the best entry.
func Candidates(candidates []advisor.Candidate) string {
	s := newStyles()
	lines := []string{s.title.Render("Recommended moves")}
	if len(candidates) == 0 {
		lines = append(lines, s.empty.Render("No moves available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	best := candidates[0].Score
	for _, c := range candidates {
		best = max(best, c.Score)
	}
	for i, c := range candidates {
		row := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.rank.Render(fmt.Sprintf("%2d.", i+1)),
			" ",
			scoreBar(c.Score, best, s),
			" ",
			s.score.Render(fmt.Sprintf("%6.2f", c.Score)),
			" ",
			s.move.Render(c.Title),
		)
		lines = append(lines, row, s.why.Render(c.Explanation))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func scoreBar(score, best float64, s styles) string {
	filled := 0
	if best > 0 && score > 0 {
		filled = int(math.Round(barWidth * score / best))
	}
	filled = min(max(filled, 0), barWidth)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", barWidth-filled)),
		s.barBracket.Render("]"),
	)
}

// State renders the round header and both boards.
func State(st game.State) string {
	s := newStyles()
	header := fmt.Sprintf("round %d, turn %d, %s to pick", st.Turn.Round, st.Turn.TurnInRound, st.ActingPlayer())
	if st.Turn.Complete() {
		header = fmt.Sprintf("round %d complete", st.Turn.Round)
	}

	lines := []string{
		s.title.Render("Table"),
		s.header.Render(header),
		field(s, "roles", joinRoles(st.Round.AvailableRoles.Ordered())),
		field(s, "face-up", joinResources(st.Round.FaceUp)),
		field(s, "quarries", fmt.Sprintf("%d left", st.Round.DiscountTokensRemaining)),
	}
	if len(st.Round.Taken) > 0 {
		taken := make([]string, 0, len(st.Round.Taken))
		for _, t := range st.Round.Taken {
			taken = append(taken, fmt.Sprintf("%s by %s", t.Role, t.By))
		}
		lines = append(lines, field(s, "taken", s.taken.Render(strings.Join(taken, ", "))))
	}

	you := board(s, "You", st.You, st.Holder == game.You, game.RoleUnknown)
	opp := board(s, "Opponent", st.Opponent, st.Holder == game.Opponent, st.OpponentLastRole)
	lines = append(lines, s.section.Render(you), s.section.Render(opp))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func board(s styles, name string, b game.Board, holder bool, last game.Role) string {
	title := name
	if holder {
		title += " (first player)"
	}
	resources := append([]game.Resource{b.StartingResource}, b.ExtraResources...)
	buildings := "none"
	if len(b.OwnedBuildings) > 0 {
		names := make([]string, 0, len(b.OwnedBuildings))
		for _, building := range b.OwnedBuildings {
			names = append(names, string(building))
		}
		buildings = strings.Join(names, ", ")
	}
	lines := []string{
		s.move.Render(title),
		field(s, "plantations", joinResources(resources)),
		field(s, "quarries", fmt.Sprint(b.DiscountTokens)),
		field(s, "buildings", buildings),
		field(s, "doubloons", fmt.Sprint(b.Money)),
	}
	if last != game.RoleUnknown {
		lines = append(lines, field(s, "last role", last.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Catalog renders the building table.
func Catalog(c *game.Catalog) string {
	s := newStyles()
	lines := []string{s.title.Render("Buildings")}
	for _, def := range c.All() {
		detail := fmt.Sprintf("cost %2d  %-10s", def.Cost, def.Category)
		if def.Scored {
			detail += fmt.Sprintf(" value %.1f", def.Value)
		}
		if def.Resource != "" {
			detail += " " + def.Resource.String()
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(fmt.Sprintf("%-18s", def.Name)), s.value.Render(detail)))
	}

	lines = append(lines, s.section.Render(s.title.Render("Plantations")))
	for _, r := range game.Plantations() {
		v, _ := c.BaseValue(r)
		lines = append(lines, field(s, fmt.Sprintf("%-8s", r), fmt.Sprintf("base value %.1f", v)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Preferences renders the affirmation counts.
func Preferences(entries []advisor.PreferenceEntry) string {
	s := newStyles()
	lines := []string{s.title.Render("Affirmed moves")}
	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("None yet."))
	}
	for _, e := range entries {
		m := game.Move{Role: e.Key.Role, Resource: e.Key.Resource, Building: e.Key.Building}
		lines = append(lines, field(s, m.String(), fmt.Sprintf("x%d", e.Count)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", s.value.Render(value))
}

func joinRoles(roles []game.Role) string {
	if len(roles) == 0 {
		return "none"
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return strings.Join(names, ", ")
}

func joinResources(resources []game.Resource) string {
	if len(resources) == 0 {
		return "none"
	}
	names := make([]string, 0, len(resources))
	for _, r := range resources {
		if r == game.ResourceNone {
			names = append(names, "-")
			continue
		}
		names = append(names, r.String())
	}
	return strings.Join(names, ", ")
}
