package game

import (
	"math/rand"
	"sync"
	"time"
)

// Random is the only source of chance in a game: shuffles, the opponent's
// trigger rolls and the shuffle effects all draw from it.
type Random interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

type lockedRandom struct {
	sync.Mutex
	rand *rand.Rand
}

func NewRandom(seed int64) Random {
	return &lockedRandom{rand: rand.New(rand.NewSource(seed))}
}

func DefaultRandom() Random {
	return NewRandom(time.Now().UnixNano())
}

func (r *lockedRandom) Intn(n int) int {
	r.Lock()
	defer r.Unlock()
	return r.rand.Intn(n)
}

func (r *lockedRandom) Float64() float64 {
	r.Lock()
	defer r.Unlock()
	return r.rand.Float64()
}

// ScriptedRandom replays fixed values in a loop. Intn reduces the scripted
// integer modulo n so any script stays in range.
type ScriptedRandom struct {
	ints   []int
	floats []float64
	i, f   int
}

func NewScriptedRandom(ints []int, floats []float64) *ScriptedRandom {
	return &ScriptedRandom{ints: ints, floats: floats}
}

func (r *ScriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	if v < 0 {
		v = -v
	}
	return v % n
}

func (r *ScriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}
