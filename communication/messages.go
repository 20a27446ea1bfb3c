package communication

import (
	"encoding/json"
	"fmt"

	"planter/advisor"
	"planter/game"
)

// CandidateJSON is one ranked recommendation on the wire.
type CandidateJSON struct {
	Score       float64 `json:"score"`
	Title       string  `json:"title"`
	Explanation string  `json:"explanation"`
	Role        string  `json:"role,omitempty"`
	Plantation  string  `json:"plantation,omitempty"`
	Building    string  `json:"building,omitempty"`
}

func FromCandidates(candidates []advisor.Candidate) []CandidateJSON {
	out := make([]CandidateJSON, 0, len(candidates))
	for _, c := range candidates {
		cj := CandidateJSON{
			Score:       c.Score,
			Title:       c.Title,
			Explanation: c.Explanation,
			Role:        c.Move.Role.String(),
		}
		switch c.Kind {
		case game.ClaimResource, game.ClaimDiscountToken:
			cj.Plantation = c.Move.Resource.String()
		case game.PurchaseBuilding:
			cj.Building = string(c.Move.Building)
		}
		out = append(out, cj)
	}
	return out
}

// Candidate restores the advisor form of a candidate read off the wire.
func (cj CandidateJSON) Candidate(c *game.Catalog) advisor.Candidate {
	m := game.Move{Role: game.ParseRole(cj.Role)}
	if cj.Plantation != "" {
		m.Resource = game.ParseResource(cj.Plantation)
	}
	if cj.Building != "" {
		m.Building, _ = c.ParseBuilding(cj.Building)
	}
	return advisor.Candidate{
		Kind:        m.Kind(),
		Move:        m,
		Score:       cj.Score,
		Title:       cj.Title,
		Explanation: cj.Explanation,
	}
}

// MoveCommand names a pick for apply, opponent and affirm.
type MoveCommand struct {
	Role     string `json:"role"`
	Resource string `json:"resource,omitempty"`
	Building string `json:"building,omitempty"`
}

// Parse resolves the names. Only an absent role is an error; an unknown one
// parses to game.RoleUnknown and applying it is a no-op.
func (mc MoveCommand) Parse(c *game.Catalog) (game.Role, game.Resource, game.Building, error) {
	if mc.Role == "" {
		return game.RoleUnknown, game.ResourceNone, game.NoBuilding, fmt.Errorf("%w: role", ErrMissingField)
	}
	building, _ := c.ParseBuilding(mc.Building)
	return game.ParseRole(mc.Role), game.ParseResource(mc.Resource), building, nil
}

// CommandFor is the inverse of MoveCommand.Parse.
func CommandFor(m game.Move) MoveCommand {
	mc := MoveCommand{Role: m.Role.String()}
	if m.Resource != "" && m.Resource != game.ResourceNone {
		mc.Resource = m.Resource.String()
	}
	mc.Building = string(m.Building)
	return mc
}

type ResetCommand struct {
	FirstPlayer string `json:"firstPlayer"`
}

func (rc ResetCommand) Parse() (game.Player, error) {
	p, err := game.ParsePlayer(rc.FirstPlayer)
	if err != nil {
		return game.You, fmt.Errorf("firstPlayer: %w", err)
	}
	return p, nil
}

type RoundCommand struct {
	FaceUp []string `json:"faceUp"`
}

func (rc RoundCommand) Parse() []game.Resource {
	row := make([]game.Resource, 0, len(rc.FaceUp))
	for _, name := range rc.FaceUp {
		row = append(row, game.ParseResource(name))
	}
	return row
}

type PreferenceJSON struct {
	Role     string `json:"role"`
	Resource string `json:"resource,omitempty"`
	Building string `json:"building,omitempty"`
	Count    int    `json:"count"`
}

func FromPreferences(entries []advisor.PreferenceEntry) []PreferenceJSON {
	out := make([]PreferenceJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, PreferenceJSON{
			Role:     e.Key.Role.String(),
			Resource: string(e.Key.Resource),
			Building: string(e.Key.Building),
			Count:    e.Count,
		})
	}
	return out
}

func (pj PreferenceJSON) Entry() advisor.PreferenceEntry {
	return advisor.PreferenceEntry{
		Key: advisor.PreferenceKey{
			Role:     game.ParseRole(pj.Role),
			Resource: game.Resource(pj.Resource),
			Building: game.Building(pj.Building),
		},
		Count: pj.Count,
	}
}

// SessionView is everything a client needs to redraw after a command.
type SessionView struct {
	ID              string           `json:"id"`
	State           StateJSON        `json:"state"`
	ActingPlayer    string           `json:"actingPlayer"`
	Recommendations []CandidateJSON  `json:"recommendations"`
	Preferences     []PreferenceJSON `json:"preferences"`
}

// ApplyResult answers apply and opponent commands. Applied is false when the
// move lacked a field its role needs.
type ApplyResult struct {
	Applied bool        `json:"applied"`
	Session SessionView `json:"session"`
}

type AffirmResult struct {
	Count int `json:"count"`
}

// Envelope frames every websocket message.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	TypeRecommend       = "recommend"
	TypeApply           = "apply"
	TypeOpponent        = "opponent"
	TypeAffirm          = "affirm"
	TypeReset           = "reset"
	TypeRound           = "round"
	TypeState           = "state"
	TypeRecommendations = "recommendations"
	TypeError           = "error"
)

// NewEnvelope marshals payload into an envelope of type t.
func NewEnvelope(t string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", t, err)
	}
	return Envelope{Type: t, Payload: raw}, nil
}

type ErrorJSON struct {
	Error string `json:"error"`
}
