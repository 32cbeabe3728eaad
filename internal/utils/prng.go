// internal/utils/prng.go
package utils

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

var (
	// ErrEmptyWeights is returned when there is nothing to choose from.
	ErrEmptyWeights = errors.New("no weights to choose from")
	// ErrNoPositiveWeight is returned when no weight is strictly positive.
	ErrNoPositiveWeight = errors.New("no positive weight")
)

// RandomSource is the one random generator shared by the simulation.
// Inject a seeded PRNGService, or a scripted source in tests.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed returns the seed the service was built with.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный случайный выбор: draws one index from
// the discrete distribution given by raw, non-normalized weights. Negative,
// NaN and zero weights are never chosen. Fails when nothing is choosable.
func ChooseWeighted(src RandomSource, weights []float64) (int, error) {
	if len(weights) == 0 {
		return -1, ErrEmptyWeights
	}
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 && !math.IsInf(w, 1) {
			total += w
			last = i
		}
	}
	if last < 0 || total <= 0 {
		return -1, fmt.Errorf("%w among %d weights", ErrNoPositiveWeight, len(weights))
	}

	r := src.Float64() * total
	upto := 0.0
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 1) {
			continue
		}
		upto += w
		if r < upto {
			return i, nil
		}
	}
	// r landed on total through rounding
	return last, nil
}

// Normalize scales weights so they sum to one. Non-positive weights become zero.
func Normalize(weights []float64) ([]float64, error) {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return nil, ErrNoPositiveWeight
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		if w > 0 {
			out[i] = w / total
		}
	}
	return out, nil
}
