package models

import "time"

// Friendship is one undirected edge stored once, keyed by the
// normalized pair UserLo < UserHi.
type Friendship struct {
	UserLo    int64
	UserHi    int64
	CreatedAt time.Time
}

// NormalizePair orders two user ids into the canonical (lo, hi) form.
func NormalizePair(a, b int64) (lo, hi int64) {
	if a < b {
		return a, b
	}
	return b, a
}
