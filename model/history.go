package model

// historySize is how many recent fingerprints are kept for cycle detection
const historySize = 5

// History keeps the fingerprints of recent generations to spot still lifes and short cycles
type History struct {
	recent []string
}

// Record adds a fingerprint and drops the oldest once the history is full
func (h *History) Record(fingerprint string) {
	h.recent = append(h.recent, fingerprint)

	if len(h.recent) > historySize {
		h.recent = h.recent[1:]
	}
}

// IsStagnant reports whether fingerprint repeats one of the last three recorded states,
// which covers still lifes and cycles of period two or three
func (h *History) IsStagnant(fingerprint string) bool {
	if len(h.recent) < 3 {
		return false
	}

	for _, seen := range h.recent[len(h.recent)-3:] {
		if seen == fingerprint {
			return true
		}
	}
	return false
}

// Len returns the number of recorded fingerprints
func (h *History) Len() int {
	return len(h.recent)
}

// Reset forgets every recorded fingerprint
func (h *History) Reset() {
	h.recent = nil
}
