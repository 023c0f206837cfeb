package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/hailam/zipfix/internal/adapters/archive"
	"github.com/hailam/zipfix/internal/adapters/corrupt"
	"github.com/hailam/zipfix/internal/adapters/samples"
	"github.com/hailam/zipfix/internal/ports"
	"github.com/hailam/zipfix/internal/utils"
)

// StaticFixtureFactory provides concrete implementations for FixtureGenerators.
type StaticFixtureFactory struct {
	generators map[ports.FixtureType]ports.FixtureGenerator
}

// New creates a factory whose generators draw from a clock-seeded source.
func New() ports.FixtureFactory {
	return NewWithRand(utils.NewRand())
}

// NewSeeded creates a factory whose generators share one seeded source,
// so a whole run is reproducible from a single seed.
func NewSeeded(seed uint64) ports.FixtureFactory {
	return NewWithRand(rand.New(rand.NewPCG(seed, seed)))
}

// NewWithRand creates a factory with all generators sharing rng.
func NewWithRand(rng *rand.Rand) ports.FixtureFactory {
	return &StaticFixtureFactory{
		generators: map[ports.FixtureType]ports.FixtureGenerator{
			ports.FixtureTypeArchive:   archive.NewWithRand(rng),
			ports.FixtureTypeCorrupted: corrupt.NewWithRand(rng),
			ports.FixtureTypeSamples:   samples.NewWithRand(rng),
		},
	}
}

// For returns the appropriate FixtureGenerator for the given FixtureType.
func (f *StaticFixtureFactory) For(t ports.FixtureType) (ports.FixtureGenerator, error) {
	gen, ok := f.generators[t]
	if !ok {
		return nil, fmt.Errorf("unsupported fixture type: %s", t)
	}
	return gen, nil
}
