package ports

// FixtureFactory is the port for looking up generators by FixtureType.
type FixtureFactory interface {
	// For returns a FixtureGenerator for the given FixtureType, or an error if unsupported.
	For(t FixtureType) (FixtureGenerator, error)
}
