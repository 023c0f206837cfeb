package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hailam/zipfix/internal/ports"
)

// SizeTarget names one archive fixture and its cumulative uncompressed
// entry-size target.
type SizeTarget struct {
	Name  string
	Bytes int64
}

// DefaultTargets are the archives a plain run produces.
var DefaultTargets = []SizeTarget{
	{Name: "1mb.zip", Bytes: 1 << 20},
	{Name: "10mb.zip", Bytes: 10 << 20},
}

const (
	// CorruptedName is the fixture rejected by structural validation.
	CorruptedName = "corrupted.zip"
	// SamplesName is the opt-in archive of real-format documents.
	SamplesName = "samples.zip"

	corruptedGarbageBytes = 1024
	samplesPayloadBytes   = 4096
)

// FixtureService orchestrates fixture generation by parsing sizes,
// selecting generators, and invoking them.
type FixtureService struct {
	factory ports.FixtureFactory
	parser  ports.SizeParser
}

// NewFixtureService constructs a FixtureService with the given factory and parser.
func NewFixtureService(factory ports.FixtureFactory, parser ports.SizeParser) *FixtureService {
	return &FixtureService{factory: factory, parser: parser}
}

// GenerateAll writes the full fixture set into outDir, creating it if
// needed: every DefaultTargets archive, the corrupted fixture, and the
// samples archive when withSamples is set. progress, if non-nil, is
// called with each file name before it is generated.
func (s *FixtureService) GenerateAll(outDir string, withSamples bool, progress func(name string)) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}
	for _, target := range DefaultTargets {
		if progress != nil {
			progress(target.Name)
		}
		if err := s.generate(ports.FixtureTypeArchive, filepath.Join(outDir, target.Name), target.Bytes); err != nil {
			return err
		}
	}
	if progress != nil {
		progress(CorruptedName)
	}
	if err := s.generate(ports.FixtureTypeCorrupted, filepath.Join(outDir, CorruptedName), corruptedGarbageBytes); err != nil {
		return err
	}
	if withSamples {
		if progress != nil {
			progress(SamplesName)
		}
		if err := s.generate(ports.FixtureTypeSamples, filepath.Join(outDir, SamplesName), samplesPayloadBytes); err != nil {
			return err
		}
	}
	return nil
}

// CreateArchive generates a single archive fixture at outPath with a
// human-readable size spec (e.g., "5MB").
func (s *FixtureService) CreateArchive(outPath, sizeSpec string) error {
	sizeBytes, err := s.parser.Parse(sizeSpec)
	if err != nil {
		return fmt.Errorf("invalid size '%s': %w", sizeSpec, err)
	}
	return s.generate(ports.FixtureTypeArchive, outPath, sizeBytes)
}

func (s *FixtureService) generate(t ports.FixtureType, outPath string, sizeBytes int64) error {
	gen, err := s.factory.For(t)
	if err != nil {
		return fmt.Errorf("no generator for type '%s': %w", t, err)
	}
	if err := gen.Generate(outPath, sizeBytes); err != nil {
		return fmt.Errorf("failed to generate %s: %w", outPath, err)
	}
	return nil
}
