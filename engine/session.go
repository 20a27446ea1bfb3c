package engine

import (
	"sync"

	"planter/advisor"
	"planter/game"
	"planter/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Session is the single owner of a game's mutable state: the observed boards,
// the round, the turn counter and the preference memory. Every method is one
// atomic read-modify-write.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	state     game.State
	prefs     *advisor.PreferenceMemory
	advisor   *advisor.Advisor
	catalog   *game.Catalog
	weights   advisor.Weights
	collector metrics.Collector
	logger    zerolog.Logger

	holder game.Player
	faceUp []game.Resource
}

func NewSession(options ...Option) *Session {
	s := &Session{
		ID:        uuid.New(),
		prefs:     advisor.NewPreferenceMemory(),
		catalog:   game.StandardCatalog(),
		weights:   advisor.DefaultWeights(),
		collector: metrics.NewDummyCollector(),
		logger:    log.Logger,
		holder:    game.You,
	}
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.With().Str("session", s.ID.String()).Logger()
	s.advisor = advisor.New(
		advisor.WithCatalog(s.catalog),
		advisor.WithWeights(s.weights),
		advisor.WithPreferences(s.prefs),
	)
	s.state = game.NewState(s.holder, s.faceUp)
	s.collector.Start()
	return s
}

// RecommendMoves ranks the candidates of an arbitrary state with the session's
// weights and preference memory. The session state is not touched.
func (s *Session) RecommendMoves(state game.State) []advisor.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	state = state.Clone()
	state.Normalize()
	s.collector.AddRecommendation()
	return s.advisor.Recommend(state)
}

// Recommend ranks the candidates of the session's own state.
func (s *Session) Recommend() []advisor.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collector.AddRecommendation()
	candidates := s.advisor.Recommend(s.state)
	s.logger.Debug().Msgf("ranked %d candidates on turn %d", len(candidates), s.state.Turn.TurnInRound)
	return candidates
}

// ApplyChosenMove records the advised player's pick.
func (s *Session) ApplyChosenMove(role game.Role, resource game.Resource, building game.Building) (game.Effect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(game.You, moveOf(role, resource, building))
}

// ApplyOpponentRole records the opponent's pick. gain is the resource a
// Settler pick took.
func (s *Session) ApplyOpponentRole(role game.Role, gain game.Resource, building game.Building) (game.Effect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(game.Opponent, moveOf(role, gain, building))
}

// RecordAffirmedPreference remembers that the user endorsed a move and
// returns how often it has been endorsed.
func (s *Session) RecordAffirmedPreference(role game.Role, resource game.Resource, building game.Building) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := moveOf(role, resource, building)
	n := s.prefs.Affirm(m)
	s.collector.AddAffirmation()
	s.logger.Info().Msgf("affirmed %s (%d)", m, n)
	return n
}

// ResetSession reinitialises the boards, the quarry pool, the preference
// memory and the turn counter. holder picks first in the fresh game.
func (s *Session) ResetSession(holder game.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holder = holder
	s.state = game.NewState(holder, s.faceUp)
	s.prefs.Reset()
	s.collector.AddReset()
	s.logger.Info().Msgf("session reset, %s picks first", holder)
}

// StartRound opens the next round with a new face-up row.
func (s *Session) StartRound(faceUp []game.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.StartRound(faceUp)
	s.collector.AddRound()
	s.logger.Info().Msgf("round %d started with %v", s.state.Turn.Round, faceUp)
}

// Load adopts an externally observed state.
func (s *Session) Load(state game.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state = state.Clone()
	state.Normalize()
	s.state = state
	s.holder = state.Holder
}

// State returns a copy of the session state.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// ActingPlayer returns whose pick the current turn is.
func (s *Session) ActingPlayer() game.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActingPlayer()
}

func (s *Session) Preferences() []advisor.PreferenceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Snapshot()
}

func (s *Session) Catalog() *game.Catalog {
	return s.catalog
}

func (s *Session) Metrics() metrics.SessionMetric {
	return s.collector.Complete()
}

func (s *Session) apply(p game.Player, m game.Move) (game.Effect, bool) {
	before := s.state
	score, rank := rankOf(s.advisor.RecommendFor(before, p), m)

	effect, ok := s.state.Apply(p, m, s.catalog)
	if !ok {
		s.logger.Warn().Msgf("ignored incomplete move %s for %s", m, p)
		return effect, false
	}

	s.collector.AddMove(metrics.MoveRecord{
		Round:    before.Turn.Round,
		Turn:     before.Turn.TurnInRound,
		Player:   p,
		Role:     m.Role,
		Resource: m.Resource,
		Building: m.Building,
		Score:    score,
		Rank:     rank,
	})
	s.logger.Info().Msgf("%s: %s (ranked %d)", p, m, rank)
	return effect, true
}

// moveOf drops the fields the role does not act on.
func moveOf(role game.Role, resource game.Resource, building game.Building) game.Move {
	m := game.Move{Role: role}
	switch role {
	case game.Settler:
		m.Resource = resource
	case game.Builder:
		m.Building = building
	}
	return m
}

// rankOf finds m among ranked candidates. The rank is 1-based, 0 if absent.
func rankOf(candidates []advisor.Candidate, m game.Move) (float64, int) {
	key := advisor.KeyFor(m)
	for i, c := range candidates {
		if advisor.KeyFor(c.Move) == key {
			return c.Score, i + 1
		}
	}
	return 0, 0
}
