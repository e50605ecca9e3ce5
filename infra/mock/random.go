package mock

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CrestNiraj12/termsocial/app"
)

// Random is a seedable, goroutine-safe random source shared by the mock
// backend. Backend calls run inside tea.Cmd goroutines while comment IDs are
// drawn on the update loop, hence the lock.
type Random struct {
	mu  sync.Mutex
	src *rand.ChaCha8
	rng *rand.Rand
}

// NewRandom returns a source seeded with seed. A zero seed uses the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)
	return &Random{src: src, rng: rand.New(src)}
}

// IntN returns a uniform int in [0,n). n must be positive.
func (r *Random) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// Read fills p with random bytes.
func (r *Random) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Read(p)
}

// Pick returns a uniformly chosen element of pool. It panics on an empty pool.
func Pick[T any](r *Random, pool []T) T {
	return pool[r.IntN(len(pool))]
}

// IDGenerator builds identifiers from the current time plus a random
// component. A session sequence breaks ties between identical timestamps.
type IDGenerator struct {
	clock app.Clock
	rand  *Random

	mu  sync.Mutex
	seq uint64
}

// NewIDGenerator creates a generator drawing randomness from r.
func NewIDGenerator(clock app.Clock, r *Random) *IDGenerator {
	return &IDGenerator{clock: clock, rand: r}
}

// NewID returns "<prefix>_<unixnano>_<seq><random>".
func (g *IDGenerator) NewID(prefix string) string {
	g.mu.Lock()
	g.seq++
	seq := g.seq
	g.mu.Unlock()

	u, err := uuid.NewRandomFromReader(g.rand)
	suffix := ""
	if err == nil {
		suffix = u.String()[:8]
	}
	return fmt.Sprintf("%s_%d_%d%s", prefix, g.clock.Now().UnixNano(), seq, suffix)
}
