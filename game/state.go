package game

// State is everything the advisor can observe at a decision point.
type State struct {
	You      Board
	Opponent Board
	Round    RoundState
	Turn     TurnCounter
	// Holder has first-player status this round.
	Holder           Player
	OpponentLastRole Role
}

// NewState returns the start of a game with holder picking first and the
// given face-up row.
func NewState(holder Player, faceUp []Resource) State {
	s := State{
		Round:  NewRoundState(faceUp, QuarryPool),
		Turn:   NewTurnCounter(),
		Holder: holder,
	}
	*s.Board(holder) = NewBoard(StartingResourceFor(FirstPlayer))
	*s.Board(holder.Other()) = NewBoard(StartingResourceFor(SecondPlayer))
	return s
}

// Board returns the board of p.
func (s *State) Board(p Player) *Board {
	if p == Opponent {
		return &s.Opponent
	}
	return &s.You
}

// ActingPlayer returns who picks on the current turn.
func (s *State) ActingPlayer() Player {
	return ActingPlayer(s.Holder, s.Turn.TurnInRound)
}

// Clone returns a deep copy that shares no slices or maps with s.
func (s State) Clone() State {
	s.You = s.You.Clone()
	s.Opponent = s.Opponent.Clone()
	s.Round = s.Round.Clone()
	return s
}

// Normalize restores the invariants of an externally observed state: both
// boards are normalized, the quarry pool is never negative, the turn counter
// stays within 1..RoundComplete and a missing role set means a fresh round.
func (s *State) Normalize() {
	s.You.Normalize()
	s.Opponent.Normalize()
	s.Round.DiscountTokensRemaining = max(0, s.Round.DiscountTokensRemaining)
	if s.Round.AvailableRoles == nil {
		s.Round.AvailableRoles = NewRoleSet(AllRoles()...)
	}
	s.Turn.TurnInRound = min(max(1, s.Turn.TurnInRound), RoundComplete)
	s.Turn.Round = max(1, s.Turn.Round)
}
