package corrupt

import (
	"math/rand/v2"
	"os"

	"github.com/hailam/zipfix/internal/ports"
	"github.com/hailam/zipfix/internal/utils"
)

// Signature is the ZIP local-file-header magic. A signature-sniffing
// reader accepts the fixture; structural validation must reject it.
var Signature = []byte{0x50, 0x4B, 0x03, 0x04}

// DefaultGarbageSize is the number of random bytes after the signature.
const DefaultGarbageSize = 1024

// CorruptGenerator writes a file that starts like a ZIP and then decays
// into garbage: no length or CRC fields, no central directory.
type CorruptGenerator struct {
	rng *rand.Rand
}

func New() ports.FixtureGenerator {
	return NewWithRand(utils.NewRand())
}

// NewWithRand uses the given random source, enabling reproducible fixtures.
func NewWithRand(rng *rand.Rand) ports.FixtureGenerator {
	return &CorruptGenerator{rng: rng}
}

// Generate writes the signature followed by sizeBytes random bytes
// (DefaultGarbageSize when sizeBytes <= 0).
func (g *CorruptGenerator) Generate(path string, sizeBytes int64) error {
	if sizeBytes <= 0 {
		sizeBytes = DefaultGarbageSize
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(Signature); err != nil {
		f.Close()
		return err
	}
	if err := utils.WriteRandomBytes(f, g.rng, sizeBytes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
