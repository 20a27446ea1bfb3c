package game

// Two-player setup and bookkeeping constants.
const (
	StartingMoney   = 3
	QuarryPool      = 5
	ProspectorBonus = 1

	TurnsPerRound = 6
	RoundComplete = TurnsPerRound + 1 // sentinel: no further picks this round
)

// StartingResourceFor returns the plantation a seat starts the game with.
// The holder of first-player status opens with Indigo, the other with Corn.
func StartingResourceFor(seat Seat) Resource {
	if seat == FirstPlayer {
		return Indigo
	}
	return Corn
}
