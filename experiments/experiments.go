package experiments

import (
	"fmt"
	"time"

	"planter/advisor"
	"planter/engine"
	"planter/game"
	"planter/metrics"
	"planter/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	Games          int
	Rounds         int
	Seed           uint64
	YouPolicy      string
	OpponentPolicy string
	Weights        advisor.Weights
	// OutDir receives a timestamped folder of CSV files. Empty skips writing.
	OutDir string
}

func DefaultConfig() Config {
	return Config{
		Games:          10,
		Rounds:         4,
		Seed:           1,
		YouPolicy:      "advisor",
		OpponentPolicy: "random",
		Weights:        advisor.DefaultWeights(),
	}
}

type Result struct {
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary Summary
	// Dir is where the CSV files went, empty when nothing was written.
	Dir string
}

// Summary averages the final holdings per seat.
type Summary struct {
	Games             int
	YouMoney          float64
	OpponentMoney     float64
	YouResources      float64
	OpponentResources float64
	YouBuildings      float64
	OpponentBuildings float64
}

// Run plays cfg.Games games of cfg.Rounds rounds between the two policies.
// First-player status alternates between games.
func Run(cfg Config) (Result, error) {
	if cfg.Games <= 0 || cfg.Rounds <= 0 {
		return Result{}, fmt.Errorf("games and rounds must be positive, got %d and %d", cfg.Games, cfg.Rounds)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	supply := NewSupply(rng)
	a := advisor.New(advisor.WithWeights(cfg.Weights))
	you, err := player.New(cfg.YouPolicy, a, rng.Uint64())
	if err != nil {
		return Result{}, err
	}
	opp, err := player.New(cfg.OpponentPolicy, a, rng.Uint64())
	if err != nil {
		return Result{}, err
	}

	log.Info().Msgf("simulating %d games of %d rounds, %s vs %s", cfg.Games, cfg.Rounds, you.Name(), opp.Name())

	var result Result
	for i := 1; i <= cfg.Games; i++ {
		holder := game.You
		if i%2 == 0 {
			holder = game.Opponent
		}
		record, moves := runGame(i, cfg, holder, supply, you, opp)
		record.Seed = cfg.Seed
		result.Games = append(result.Games, record)
		result.Moves = append(result.Moves, moves...)
		log.Debug().Msgf("game %d: you %d doubloons, opponent %d doubloons", i, record.You.Money, record.Opponent.Money)
	}
	result.Summary = summarize(result.Games)
	log.Info().Msgf("completed %d games", cfg.Games)

	if cfg.OutDir == "" {
		return result, nil
	}
	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return result, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return result, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return result, err
	}
	log.Info().Msg("stored move records")
	result.Dir = writer.Dir()
	return result, nil
}

// runGame plays one game. A round ends early when the acting player has no
// applicable move.
func runGame(id int, cfg Config, holder game.Player, supply *Supply, you, opp player.Policy) (metrics.GameRecord, []metrics.MoveRecord) {
	collector := metrics.NewCollector()
	session := engine.NewSession(
		engine.WithHolder(holder),
		engine.WithFaceUp(supply.Row()...),
		engine.WithWeights(cfg.Weights),
		engine.WithCollector(collector),
		engine.WithLogger(log.Logger.Level(zerolog.WarnLevel)),
	)

	start := time.Now()
	for round := 1; round <= cfg.Rounds; round++ {
		if round > 1 {
			session.StartRound(supply.Row())
		}
		for {
			state := session.State()
			if state.Turn.Complete() {
				break
			}
			p := state.ActingPlayer()
			policy := you
			if p == game.Opponent {
				policy = opp
			}
			c, ok := policy.Choose(state, p)
			if !ok {
				break
			}
			m := c.Move
			if p == game.Opponent {
				session.ApplyOpponentRole(m.Role, m.Resource, m.Building)
			} else {
				session.ApplyChosenMove(m.Role, m.Resource, m.Building)
			}
		}
	}
	end := time.Now()

	final := session.State()
	moves := collector.Moves()
	for i := range moves {
		moves[i].Game = id
	}
	return metrics.GameRecord{
		ID:        id,
		Rounds:    cfg.Rounds,
		YouPolicy: you.Name(),
		OppPolicy: opp.Name(),
		You:       metrics.Summarize(final.You),
		Opponent:  metrics.Summarize(final.Opponent),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}, moves
}

func summarize(games []metrics.GameRecord) Summary {
	s := Summary{Games: len(games)}
	if len(games) == 0 {
		return s
	}
	for _, g := range games {
		s.YouMoney += float64(g.You.Money)
		s.OpponentMoney += float64(g.Opponent.Money)
		s.YouResources += float64(g.You.Resources)
		s.OpponentResources += float64(g.Opponent.Resources)
		s.YouBuildings += float64(g.You.Buildings)
		s.OpponentBuildings += float64(g.Opponent.Buildings)
	}
	n := float64(len(games))
	s.YouMoney /= n
	s.OpponentMoney /= n
	s.YouResources /= n
	s.OpponentResources /= n
	s.YouBuildings /= n
	s.OpponentBuildings /= n
	return s
}
