package domain

// LibraryFilter narrows and pages a library listing.
type LibraryFilter struct {
	Search string // case-insensitive substring of the normalized name
	Limit  int
	Offset int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Normalized returns a copy with the limit clamped to [1, MaxListLimit] and a non-negative offset.
func (f LibraryFilter) Normalized() LibraryFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	f.Search = NormalizeText(f.Search)
	return f
}
