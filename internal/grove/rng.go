package grove

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math"
	"math/rand"
)

// RNG supplies the uniform draws used for board generation.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// Range returns a uniform value in [lo, hi).
	Range(lo, hi float64) float64
}

// randRNG adapts a seeded math/rand source.
type randRNG struct {
	r *rand.Rand
}

// NewRandRNG returns an RNG backed by math/rand with the given seed.
// The same seed always yields the same sequence of boards.
func NewRandRNG(seed int64) RNG {
	return &randRNG{r: rand.New(rand.NewSource(seed))}
}

func (g *randRNG) Float64() float64 {
	return g.r.Float64()
}

func (g *randRNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*g.r.Float64()
}

// HMACRNG derives floats from an HMAC-SHA256 byte stream keyed by a server
// seed over "clientSeed:nonce:round". Boards generated from it can be
// reproduced from the three seed values alone.
type HMACRNG struct {
	serverSeed string
	clientSeed string
	nonce      uint64
	round      uint64
	pos        int
	buffer     [32]byte
}

// NewHMACRNG creates a byte-stream RNG for the given seeds.
func NewHMACRNG(serverSeed, clientSeed string, nonce uint64) *HMACRNG {
	g := &HMACRNG{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
		nonce:      nonce,
	}
	g.generateRound()
	return g
}

func (g *HMACRNG) next() byte {
	if g.pos >= len(g.buffer) {
		g.round++
		g.pos = 0
		g.generateRound()
	}
	b := g.buffer[g.pos]
	g.pos++
	return b
}

func (g *HMACRNG) generateRound() {
	h := hmac.New(sha256.New, []byte(g.serverSeed))
	fmt.Fprintf(h, "%s:%d:%d", g.clientSeed, g.nonce, g.round)
	copy(g.buffer[:], h.Sum(nil))
}

// Float64 consumes four bytes and returns sum(b[i] / 256^(i+1)), which is
// always below 1.
func (g *HMACRNG) Float64() float64 {
	result := 0.0
	for i := 0; i < 4; i++ {
		result += float64(g.next()) / math.Pow(256, float64(i+1))
	}
	return result
}

// Range returns a value in [lo, hi).
func (g *HMACRNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*g.Float64()
}
