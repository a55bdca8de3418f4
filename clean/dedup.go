package clean

// pairKeySep joins the two sides of a parallel dedup key. NUL never
// survives normalization (control bytes become spaces), so a composite key
// cannot collide with real text.
const pairKeySep = "\x00"

// seenSet records the keys already accepted during one driver run. A nil
// seenSet means deduplication is off. The set grows with every distinct
// accepted key and lives exactly as long as one driver call; this is the
// deliberate memory/correctness tradeoff of exact dedup.
type seenSet map[string]struct{}

// newSeenSet returns an empty set when dedup is enabled, nil otherwise.
func newSeenSet(dedup bool) seenSet {
	if !dedup {
		return nil
	}
	return make(seenSet)
}

// insert reports whether key was not seen before, recording it as seen.
// On a nil set every key is new and nothing is recorded.
func (s seenSet) insert(key string) bool {
	if s == nil {
		return true
	}
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}
