package engine

import (
	"planter/advisor"
	"planter/game"
	"planter/metrics"

	"github.com/rs/zerolog"
)

type Option func(s *Session)

// WithHolder sets who holds first-player status after construction and after
// a reset with no explicit holder.
func WithHolder(p game.Player) Option {
	return func(s *Session) {
		s.holder = p
	}
}

// WithFaceUp sets the face-up row a new or reset session starts with.
func WithFaceUp(faceUp ...game.Resource) Option {
	return func(s *Session) {
		s.faceUp = faceUp
	}
}

func WithWeights(w advisor.Weights) Option {
	return func(s *Session) {
		s.weights = w
	}
}

func WithCatalog(c *game.Catalog) Option {
	return func(s *Session) {
		if c == nil {
			panic("catalog must not be nil")
		}
		s.catalog = c
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(s *Session) {
		if c == nil {
			panic("collector must not be nil")
		}
		s.collector = c
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}
