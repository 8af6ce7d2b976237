// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService оборачивает *rand.Rand с заданным seed, чтобы все случайные
// значения матча шли из одного воспроизводимого потока.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создаёт сервис с заданным seed. Нулевой seed берётся из
// текущего времени.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает seed, с которым создан сервис
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 возвращает число в [0.0, 1.0)
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Shuffle перемешивает n элементов через swap
func (s *PRNGService) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Fork порождает независимый сервис, чтобы один матч не сдвигал поток
// следующего.
func (s *PRNGService) Fork() *PRNGService {
	return NewPRNGService(s.rng.Int63() | 1)
}
