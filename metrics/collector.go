package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"planter/game"
)

// MoveRecord is one applied move and how the advisor had ranked it for the
// player who made it. Rank is 1-based, 0 when the move was not among the
// candidates.
type MoveRecord struct {
	Game     int
	Round    int
	Turn     int
	Player   game.Player
	Role     game.Role
	Resource game.Resource
	Building game.Building
	Score    float64
	Rank     int
}

type SessionMetric struct {
	StartTime       time.Time
	Duration        time.Duration
	Recommendations int
	Moves           int
	OpponentMoves   int
	Affirmations    int
	Resets          int
	Rounds          int
}

type Collector interface {
	Start()
	AddRecommendation()
	AddMove(record MoveRecord)
	AddAffirmation()
	AddReset()
	AddRound()
	Moves() []MoveRecord
	Complete() SessionMetric
}

type collector struct {
	startTime       time.Time
	recommendations atomic.Int32
	moves           atomic.Int32
	opponentMoves   atomic.Int32
	affirmations    atomic.Int32
	resets          atomic.Int32
	rounds          atomic.Int32

	mu      sync.Mutex
	records []MoveRecord
}

func NewCollector() Collector {
	c := &collector{}
	c.Start()
	return c
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddRecommendation() {
	m.recommendations.Add(1)
}

func (m *collector) AddMove(record MoveRecord) {
	if record.Player == game.Opponent {
		m.opponentMoves.Add(1)
	} else {
		m.moves.Add(1)
	}
	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()
}

func (m *collector) AddAffirmation() {
	m.affirmations.Add(1)
}

func (m *collector) AddReset() {
	m.resets.Add(1)
}

func (m *collector) AddRound() {
	m.rounds.Add(1)
}

func (m *collector) Moves() []MoveRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := make([]MoveRecord, len(m.records))
	copy(records, m.records)
	return records
}

func (m *collector) Complete() SessionMetric {
	return SessionMetric{
		StartTime:       m.startTime,
		Duration:        time.Since(m.startTime),
		Recommendations: int(m.recommendations.Load()),
		Moves:           int(m.moves.Load()),
		OpponentMoves:   int(m.opponentMoves.Load()),
		Affirmations:    int(m.affirmations.Load()),
		Resets:          int(m.resets.Load()),
		Rounds:          int(m.rounds.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddRecommendation()      {}
func (m *dummyCollector) AddMove(MoveRecord)      {}
func (m *dummyCollector) AddAffirmation()         {}
func (m *dummyCollector) AddReset()               {}
func (m *dummyCollector) AddRound()               {}
func (m *dummyCollector) Moves() []MoveRecord     { return nil }
func (m *dummyCollector) Complete() SessionMetric { return SessionMetric{} }
