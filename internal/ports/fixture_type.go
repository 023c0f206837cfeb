package ports

// FixtureType is the identifier for each kind of fixture.
type FixtureType string

const (
	// FixtureTypeArchive is a valid ZIP with mixed entries.
	FixtureTypeArchive FixtureType = "archive"
	// FixtureTypeCorrupted is a ZIP signature followed by garbage.
	FixtureTypeCorrupted FixtureType = "corrupted"
	// FixtureTypeSamples is a ZIP of small real-format documents.
	FixtureTypeSamples FixtureType = "samples"
)
