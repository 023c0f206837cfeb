package ports

// FixtureGenerator is the port for anything that can produce a fixture file.
type FixtureGenerator interface {
	// Generate writes a fixture at outPath. For archive fixtures sizeBytes
	// is the cumulative uncompressed entry size to reach; other fixture
	// kinds interpret it as their payload size and fall back to a default
	// when it is <= 0.
	Generate(outPath string, sizeBytes int64) error
}
