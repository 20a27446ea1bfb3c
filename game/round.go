package game

import "planter/utils"

// RoleSet is the set of roles still available in a round.
type RoleSet map[Role]struct{}

// NewRoleSet returns a set holding roles.
func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		if r != RoleUnknown {
			s[r] = struct{}{}
		}
	}
	return s
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) Remove(r Role) {
	delete(s, r)
}

// Ordered returns the members in AllRoles order.
func (s RoleSet) Ordered() []Role {
	roles := make([]Role, 0, len(s))
	for _, r := range AllRoles() {
		if s.Has(r) {
			roles = append(roles, r)
		}
	}
	return roles
}

func (s RoleSet) Clone() RoleSet {
	return NewRoleSet(s.Ordered()...)
}

// TakenRole records who claimed a role this round.
type TakenRole struct {
	By   Player
	Role Role
}

// RoundState is the shared, per-round part of the table.
type RoundState struct {
	AvailableRoles          RoleSet
	FaceUp                  []Resource // one slot per board position
	DiscountTokensRemaining int
	Taken                   []TakenRole
}

// NewRoundState opens a round with every role available.
func NewRoundState(faceUp []Resource, quarries int) RoundState {
	return RoundState{
		AvailableRoles:          NewRoleSet(AllRoles()...),
		FaceUp:                  utils.Clone(faceUp),
		DiscountTokensRemaining: max(0, quarries),
	}
}

// Offered returns the face-up plantations in slot order. Empty slots, quarry
// tiles and unknown names are skipped.
func (rs *RoundState) Offered() []Resource {
	offered := make([]Resource, 0, len(rs.FaceUp))
	for _, r := range rs.FaceUp {
		if r.IsPlantation() {
			offered = append(offered, r)
		}
	}
	return offered
}

// clearSlot empties the first face-up slot holding r and returns its index,
// or -1. Quarry tiles are never cleared.
func (rs *RoundState) clearSlot(r Resource) int {
	if !r.IsPlantation() {
		return -1
	}
	i := utils.FindIndex(rs.FaceUp, r)
	if i >= 0 {
		rs.FaceUp[i] = ResourceNone
	}
	return i
}

func (rs RoundState) Clone() RoundState {
	if rs.AvailableRoles != nil {
		rs.AvailableRoles = rs.AvailableRoles.Clone()
	}
	rs.FaceUp = utils.Clone(rs.FaceUp)
	rs.Taken = utils.Clone(rs.Taken)
	return rs
}

// TurnCounter tracks the pick within a round and the round number.
type TurnCounter struct {
	TurnInRound int // 1..6, RoundComplete once all picks are made
	Round       int
}

// NewTurnCounter returns turn 1 of round 1.
func NewTurnCounter() TurnCounter {
	return TurnCounter{TurnInRound: 1, Round: 1}
}

// Advance moves to the next pick. It never moves past RoundComplete and never
// changes the round number.
func (tc *TurnCounter) Advance() {
	if tc.TurnInRound < RoundComplete {
		tc.TurnInRound++
	}
}

// Complete reports whether every pick of the round has been made.
func (tc TurnCounter) Complete() bool {
	return tc.TurnInRound >= RoundComplete
}
