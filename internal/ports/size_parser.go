package ports

// SizeParser parses human-readable size specs (like "10MB") into a byte count.
type SizeParser interface {
	Parse(spec string) (int64, error)
}
