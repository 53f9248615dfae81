//go:generate mockgen -source=random.go -destination=mocks/mock_random.go -package=mocks

package bigint

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Random is the entropy source consumed by the primality oracle. The oracle
// treats it as opaque: IntN picks Miller-Rabin witnesses when the bound fits
// in an int, and Fill supplies raw bytes for random values of arbitrary
// size.
//
// Implementations need not be safe for concurrent use; wrap them with Locked
// when an Oracle is shared between goroutines.
type Random interface {
	// IntN returns a uniformly distributed value in [0, n). n is positive.
	IntN(n int) int
	// Fill overwrites p with random bytes.
	Fill(p []byte)
}

// chachaRandom adapts math/rand/v2's ChaCha8 generator to Random.
type chachaRandom struct {
	src *rand.ChaCha8
	rng *rand.Rand
}

// NewRandom returns a Random backed by a ChaCha8 stream seeded from the
// operating system's entropy pool.
func NewRandom() Random {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return newChaCha(seed)
}

// NewSeededRandom returns a deterministic Random for reproducible runs.
func NewSeededRandom(seed uint64) Random {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return newChaCha(s)
}

func newChaCha(seed [32]byte) *chachaRandom {
	src := rand.NewChaCha8(seed)
	return &chachaRandom{src: src, rng: rand.New(src)}
}

func (c *chachaRandom) IntN(n int) int { return c.rng.IntN(n) }

func (c *chachaRandom) Fill(p []byte) { _, _ = c.src.Read(p) }

type lockedRandom struct {
	mu sync.Mutex
	r  Random
}

// Locked wraps r so that it can be shared between goroutines.
func Locked(r Random) Random {
	if _, ok := r.(*lockedRandom); ok {
		return r
	}
	return &lockedRandom{r: r}
}

func (l *lockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRandom) Fill(p []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Fill(p)
}
