package game

// Effect describes what Apply changed.
type Effect struct {
	Player        Player
	Move          Move
	Kind          MoveKind
	Slot          int // cleared face-up slot, -1 if none
	MoneyDelta    int
	TokenDelta    int
	PoolDelta     int
	BuildingAdded bool
}

// Apply performs m for p. It is the only code that writes boards, the shared
// pools and the turn counter. Moves missing a required field leave the state
// untouched and report false. Legality (role availability, double claims) is
// the caller's responsibility.
func (s *State) Apply(p Player, m Move, c *Catalog) (Effect, bool) {
	effect := Effect{Player: p, Move: m, Kind: m.Kind(), Slot: -1}
	if !m.Complete() {
		return effect, false
	}

	board := s.Board(p)
	switch effect.Kind {
	case ClaimResource:
		board.ExtraResources = append(board.ExtraResources, m.Resource)
		effect.Slot = s.Round.clearSlot(m.Resource)
	case ClaimDiscountToken:
		board.DiscountTokens++
		effect.TokenDelta = 1
		if s.Round.DiscountTokensRemaining > 0 {
			s.Round.DiscountTokensRemaining--
			effect.PoolDelta = -1
		}
	case PurchaseBuilding:
		if board.AddBuilding(m.Building) {
			cost, _ := c.Cost(m.Building)
			effect.MoneyDelta = -board.Pay(cost)
			effect.BuildingAdded = true
		}
	case TakeSecondaryRole:
		if m.Role == Prospector {
			board.Money += ProspectorBonus
			effect.MoneyDelta = ProspectorBonus
		}
	}

	if s.Round.AvailableRoles != nil {
		s.Round.AvailableRoles.Remove(m.Role)
	}
	s.Round.Taken = append(s.Round.Taken, TakenRole{By: p, Role: m.Role})
	if p == Opponent {
		s.OpponentLastRole = m.Role
	}
	s.Turn.Advance()
	return effect, true
}

// StartRound is the external trigger that opens the next round: every role
// becomes available again, picks restart at turn 1 and a new face-up row is
// laid out. Boards and the quarry pool carry over.
func (s *State) StartRound(faceUp []Resource) {
	pool := s.Round.DiscountTokensRemaining
	s.Round = NewRoundState(faceUp, pool)
	s.Turn.TurnInRound = 1
	s.Turn.Round++
}
