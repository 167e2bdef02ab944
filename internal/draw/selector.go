package draw

import (
	crand "crypto/rand"
	"fmt"
	"math/big"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// randIntFunc returns a uniform random integer in [0, max)
type randIntFunc func(max int64) (int64, error)

// secureRandInt draws from crypto/rand. Prize selection is an outcome an
// operator could profit from predicting, so math/rand is not enough here.
func secureRandInt(max int64) (int64, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// Selector picks a prize proportionally to its weight
type Selector struct {
	randInt randIntFunc
}

// NewSelector creates a selector backed by crypto/rand
func NewSelector() *Selector {
	return &Selector{randInt: secureRandInt}
}

// SelectWinner returns one prize chosen with probability weight/totalWeight,
// or nil when no prize carries positive weight. Input order determines which
// cumulative interval each prize occupies, so callers must pass prizes in a
// stable order for reproducible behavior under an injected random source.
func (s *Selector) SelectWinner(prizes []domain.Prize) (*domain.Prize, error) {
	var total int64
	for i := range prizes {
		if prizes[i].Weight > 0 {
			total += int64(prizes[i].Weight)
		}
	}
	if total == 0 {
		return nil, nil
	}

	roll, err := s.randInt(total)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDrawRandom, err)
	}

	var cumulative int64
	for i := range prizes {
		if prizes[i].Weight <= 0 {
			continue
		}
		cumulative += int64(prizes[i].Weight)
		if roll < cumulative {
			return &prizes[i], nil
		}
	}

	return nil, fmt.Errorf("%s: roll %d outside total weight %d", ErrContextRollOutOfRange, roll, total)
}
