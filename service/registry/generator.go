package registry

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/viant/schedsim/model/process"
)

// Generator produces the attributes of a newly created process
type Generator interface {
	Generate(name string) process.Attributes
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(name string) process.Attributes

func (f GeneratorFunc) Generate(name string) process.Attributes {
	return f(name)
}

// Ranges defines inclusive bounds for randomly generated attributes
type Ranges struct {
	MinCycles   int `json:"minCycles" yaml:"minCycles"`
	MaxCycles   int `json:"maxCycles" yaml:"maxCycles"`
	MinMemory   int `json:"minMemory" yaml:"minMemory"`
	MaxMemory   int `json:"maxMemory" yaml:"maxMemory"`
	MinPriority int `json:"minPriority" yaml:"minPriority"`
	MaxPriority int `json:"maxPriority" yaml:"maxPriority"`
}

// DefaultRanges returns cycles in [1,10], memory in [10,200] and priority in [1,5]
func DefaultRanges() Ranges {
	return Ranges{
		MinCycles:   1,
		MaxCycles:   10,
		MinMemory:   10,
		MaxMemory:   200,
		MinPriority: 1,
		MaxPriority: 5,
	}
}

// Validate checks that every range is well formed; cycles must be positive.
func (r Ranges) Validate() error {
	if r.MinCycles < 1 {
		return fmt.Errorf("minCycles must be >= 1, got %d", r.MinCycles)
	}
	if r.MinCycles > r.MaxCycles {
		return fmt.Errorf("minCycles %d exceeds maxCycles %d", r.MinCycles, r.MaxCycles)
	}
	if r.MinMemory < 0 || r.MinMemory > r.MaxMemory {
		return fmt.Errorf("invalid memory range [%d,%d]", r.MinMemory, r.MaxMemory)
	}
	if r.MinPriority > r.MaxPriority {
		return fmt.Errorf("invalid priority range [%d,%d]", r.MinPriority, r.MaxPriority)
	}
	return nil
}

// Random draws attributes uniformly from Ranges
type Random struct {
	ranges Ranges
	rand   *rand.Rand
	mux    sync.Mutex
}

func (r *Random) Generate(string) process.Attributes {
	r.mux.Lock()
	defer r.mux.Unlock()
	return process.Attributes{
		Cycles:   r.between(r.ranges.MinCycles, r.ranges.MaxCycles),
		Memory:   r.between(r.ranges.MinMemory, r.ranges.MaxMemory),
		Priority: r.between(r.ranges.MinPriority, r.ranges.MaxPriority),
	}
}

func (r *Random) between(lo, hi int) int {
	return lo + r.rand.Intn(hi-lo+1)
}

// NewRandom creates a random generator; a zero seed seeds from the clock.
func NewRandom(ranges Ranges, seed int64) (*Random, error) {
	if err := ranges.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{ranges: ranges, rand: rand.New(rand.NewSource(seed))}, nil
}

// Sequence hands out the supplied attributes in order, wrapping around
type Sequence struct {
	items []process.Attributes
	next  int
	mux   sync.Mutex
}

func (s *Sequence) Generate(string) process.Attributes {
	s.mux.Lock()
	defer s.mux.Unlock()
	ret := s.items[s.next%len(s.items)]
	s.next++
	return ret
}

// NewSequence creates a deterministic generator, mostly for tests and scripted sessions
func NewSequence(items ...process.Attributes) *Sequence {
	if len(items) == 0 {
		items = []process.Attributes{{Cycles: 1, Memory: 10, Priority: 1}}
	}
	return &Sequence{items: items}
}

// Fixed always returns the same attributes
func Fixed(attrs process.Attributes) Generator {
	return GeneratorFunc(func(string) process.Attributes { return attrs })
}
