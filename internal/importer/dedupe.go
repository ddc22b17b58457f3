package importer

// dedupe tracks headwords already accepted during one import run.
type dedupe struct {
	seen    map[string]struct{}
	skipped int
}

func newDedupe(sizeHint int) *dedupe {
	return &dedupe{seen: make(map[string]struct{}, sizeHint)}
}

// accept reports whether headword is new, recording it if so.
// Repeats are counted as skipped.
func (d *dedupe) accept(headword string) bool {
	if _, ok := d.seen[headword]; ok {
		d.skipped++
		return false
	}
	d.seen[headword] = struct{}{}
	return true
}
