package game

import (
	"fmt"
	"strings"
)

// Player identifies one side of the table from the advised player's view.
type Player int

const (
	You Player = iota
	Opponent
)

func (p Player) String() string {
	if p == Opponent {
		return "opponent"
	}
	return "you"
}

// Other returns the other side of the table.
func (p Player) Other() Player {
	if p == Opponent {
		return You
	}
	return Opponent
}

// ParsePlayer accepts "you"/"me"/"self" and "opponent"/"opp"/"them".
func ParsePlayer(name string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "you", "me", "self", "":
		return You, nil
	case "opponent", "opp", "them":
		return Opponent, nil
	default:
		return You, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Seat is the pick position within a round.
type Seat int

const (
	FirstPlayer Seat = iota
	SecondPlayer
)

func (s Seat) String() string {
	if s == SecondPlayer {
		return "second"
	}
	return "first"
}

// SeatOf returns which seat picks on the given turn of a round. The first
// player picks turns 1, 3 and 5, the second player 2, 4 and 6.
func SeatOf(turn int) Seat {
	if turn%2 == 0 {
		return SecondPlayer
	}
	return FirstPlayer
}

// ActingPlayer maps the holder of first-player status and the turn within a
// round onto the player who picks.
func ActingPlayer(holder Player, turn int) Player {
	if SeatOf(turn) == FirstPlayer {
		return holder
	}
	return holder.Other()
}
