package experiments

import (
	"planter/game"

	"golang.org/x/exp/rand"
)

// supplyCounts is the plantation bag of the base game.
var supplyCounts = map[game.Resource]int{
	game.Corn:    10,
	game.Indigo:  12,
	game.Sugar:   11,
	game.Tobacco: 9,
	game.Coffee:  8,
}

// rowSize is how many plantations are laid out for two players.
const rowSize = 3

// Supply deals face-up rows from a shuffled plantation bag. The bag is
// refilled and reshuffled whenever it runs dry.
type Supply struct {
	rng *rand.Rand
	bag []game.Resource
}

func NewSupply(rng *rand.Rand) *Supply {
	s := &Supply{rng: rng}
	s.refill()
	return s
}

func (s *Supply) refill() {
	s.bag = s.bag[:0]
	for _, r := range game.Plantations() {
		for i := 0; i < supplyCounts[r]; i++ {
			s.bag = append(s.bag, r)
		}
	}
	s.rng.Shuffle(len(s.bag), func(i, j int) {
		s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
	})
}

// Row deals the next face-up row: rowSize plantations followed by a quarry.
func (s *Supply) Row() []game.Resource {
	row := make([]game.Resource, 0, rowSize+1)
	for len(row) < rowSize {
		if len(s.bag) == 0 {
			s.refill()
		}
		row = append(row, s.bag[len(s.bag)-1])
		s.bag = s.bag[:len(s.bag)-1]
	}
	return append(row, game.Quarry)
}
