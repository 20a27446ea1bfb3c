package communication

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"planter/game"
)

// BoardJSON is one player's board on the wire.
type BoardJSON struct {
	StartingResource string   `json:"startingResource"`
	ExtraResources   []string `json:"extraResources"`
	DiscountTokens   int      `json:"discountTokens"`
	OwnedBuildings   []string `json:"ownedBuildings"`
	Doubloons        int      `json:"doubloons"`
	LastRole         *string  `json:"lastRole,omitempty"`
}

type TakenRoleJSON struct {
	By   string `json:"by"`
	Role string `json:"role"`
}

type RoundStateJSON struct {
	AvailableRoles          []string        `json:"availableRoles"`
	FaceUpResources         []*string       `json:"faceUpResources"`
	DiscountTokensRemaining int             `json:"discountTokensRemaining"`
	TakenRoles              []TakenRoleJSON `json:"takenRoles,omitempty"`
}

// StateJSON is the observed state a caller hands to the advisor.
type StateJSON struct {
	You         BoardJSON      `json:"you"`
	Opponent    BoardJSON      `json:"opponent"`
	RoundState  RoundStateJSON `json:"roundState"`
	TurnNumber  int            `json:"turnNumber"`
	RoundNumber int            `json:"roundNumber,omitempty"`
	FirstPlayer string         `json:"firstPlayer,omitempty"`
}

// DecodeState validates raw against the state schema and converts it.
func DecodeState(raw []byte, c *game.Catalog) (game.State, error) {
	if err := ValidateState(raw); err != nil {
		return game.State{}, err
	}
	var sj StateJSON
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&sj); err != nil {
		return game.State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return sj.ToState(c)
}

// ToState converts the wire form. Unknown resources, roles and buildings are
// kept forgiving: resources become game.ResourceUnknown, roles are dropped,
// buildings are kept under their given name and cost nothing.
func (sj StateJSON) ToState(c *game.Catalog) (game.State, error) {
	s := game.State{
		You:      sj.You.toBoard(c),
		Opponent: sj.Opponent.toBoard(c),
		Turn: game.TurnCounter{
			TurnInRound: sj.TurnNumber,
			Round:       max(1, sj.RoundNumber),
		},
	}

	roles := make([]game.Role, 0, len(sj.RoundState.AvailableRoles))
	for _, name := range sj.RoundState.AvailableRoles {
		roles = append(roles, game.ParseRole(name))
	}
	s.Round = game.RoundState{
		AvailableRoles:          game.NewRoleSet(roles...),
		DiscountTokensRemaining: sj.RoundState.DiscountTokensRemaining,
	}
	for _, name := range sj.RoundState.FaceUpResources {
		if name == nil {
			s.Round.FaceUp = append(s.Round.FaceUp, game.ResourceNone)
			continue
		}
		s.Round.FaceUp = append(s.Round.FaceUp, game.ParseResource(*name))
	}
	for i, taken := range sj.RoundState.TakenRoles {
		by, err := game.ParsePlayer(taken.By)
		if err != nil {
			return game.State{}, fmt.Errorf("%w: takenRoles[%d]: %w", ErrInvalidState, i, err)
		}
		s.Round.Taken = append(s.Round.Taken, game.TakenRole{By: by, Role: game.ParseRole(taken.Role)})
	}

	if sj.Opponent.LastRole != nil {
		s.OpponentLastRole = game.ParseRole(*sj.Opponent.LastRole)
	}

	holder, err := sj.holder()
	if err != nil {
		return game.State{}, err
	}
	s.Holder = holder

	s.Normalize()
	return s, nil
}

// holder reads firstPlayer or, when absent, infers it from who started with
// the first seat's resource.
func (sj StateJSON) holder() (game.Player, error) {
	if sj.FirstPlayer != "" {
		p, err := game.ParsePlayer(sj.FirstPlayer)
		if err != nil {
			return game.You, fmt.Errorf("%w: firstPlayer: %w", ErrInvalidState, err)
		}
		return p, nil
	}
	first := game.StartingResourceFor(game.FirstPlayer)
	if game.ParseResource(sj.Opponent.StartingResource) == first && game.ParseResource(sj.You.StartingResource) != first {
		return game.Opponent, nil
	}
	return game.You, nil
}

func (bj BoardJSON) toBoard(c *game.Catalog) game.Board {
	b := game.Board{
		StartingResource: game.ParseResource(bj.StartingResource),
		DiscountTokens:   bj.DiscountTokens,
		Money:            bj.Doubloons,
	}
	for _, name := range bj.ExtraResources {
		b.ExtraResources = append(b.ExtraResources, game.ParseResource(name))
	}
	for _, name := range bj.OwnedBuildings {
		building, _ := c.ParseBuilding(name)
		b.OwnedBuildings = append(b.OwnedBuildings, building)
	}
	return b
}

// FromState is the inverse of ToState.
func FromState(s game.State) StateJSON {
	sj := StateJSON{
		You:      fromBoard(s.You),
		Opponent: fromBoard(s.Opponent),
		RoundState: RoundStateJSON{
			AvailableRoles:          []string{},
			FaceUpResources:         []*string{},
			DiscountTokensRemaining: s.Round.DiscountTokensRemaining,
		},
		TurnNumber:  s.Turn.TurnInRound,
		RoundNumber: s.Turn.Round,
		FirstPlayer: s.Holder.String(),
	}
	if s.OpponentLastRole != game.RoleUnknown {
		last := s.OpponentLastRole.String()
		sj.Opponent.LastRole = &last
	}
	for _, role := range s.Round.AvailableRoles.Ordered() {
		sj.RoundState.AvailableRoles = append(sj.RoundState.AvailableRoles, role.String())
	}
	for _, r := range s.Round.FaceUp {
		if r == game.ResourceNone {
			sj.RoundState.FaceUpResources = append(sj.RoundState.FaceUpResources, nil)
			continue
		}
		name := r.String()
		sj.RoundState.FaceUpResources = append(sj.RoundState.FaceUpResources, &name)
	}
	for _, taken := range s.Round.Taken {
		sj.RoundState.TakenRoles = append(sj.RoundState.TakenRoles, TakenRoleJSON{
			By:   taken.By.String(),
			Role: taken.Role.String(),
		})
	}
	return sj
}

func fromBoard(b game.Board) BoardJSON {
	bj := BoardJSON{
		StartingResource: b.StartingResource.String(),
		ExtraResources:   make([]string, 0, len(b.ExtraResources)),
		DiscountTokens:   b.DiscountTokens,
		OwnedBuildings:   make([]string, 0, len(b.OwnedBuildings)),
		Doubloons:        b.Money,
	}
	for _, r := range b.ExtraResources {
		bj.ExtraResources = append(bj.ExtraResources, r.String())
	}
	for _, building := range b.OwnedBuildings {
		bj.OwnedBuildings = append(bj.OwnedBuildings, string(building))
	}
	return bj
}

// ParseResources reads a comma separated face-up row such as
// "coffee, sugar,quarry".
func ParseResources(list string) []game.Resource {
	var row []game.Resource
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			row = append(row, game.ParseResource(name))
		}
	}
	return row
}
