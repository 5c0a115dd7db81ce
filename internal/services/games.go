package services

import (
	"math/rand/v2"
	"sync"

	"play-and-learn/internal/config"
	"play-and-learn/internal/models"
)

// GameService creates mini-game state from one seeded random source
type GameService struct {
	cfg config.Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGameService(cfg config.Config, seed uint64) *GameService {
	return &GameService{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// child splits off an independent source so each game owns its randomness
func (s *GameService) child() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewPCG(s.rng.Uint64(), s.rng.Uint64()))
}

// NewBoard lays out a fresh shape-matching board
func (s *GameService) NewBoard() models.Board {
	return models.StandardBoard(s.child(), s.cfg.Animation.Return())
}

func (s *GameService) NewNumberGame() (*models.NumberGame, error) {
	return models.NewNumberGame(s.child(), s.cfg.Games.NumberRounds)
}

func (s *GameService) NewArithmeticGame() (*models.ArithmeticGame, error) {
	return models.NewArithmeticGame(s.child(), s.cfg.Games.ArithmeticRounds)
}
