package ports

// SizeParser parses human-readable size specs (like "1000" or "2GB") into megabytes.
type SizeParser interface {
	Parse(spec string) (int64, error)
}
