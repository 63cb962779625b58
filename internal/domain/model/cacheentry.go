package model

import "time"

// DefaultFreshnessWindow is how long a fetched repository list stays valid.
const DefaultFreshnessWindow = time.Hour

// CacheEntry is a fetched repository list together with the moment it was captured.
type CacheEntry struct {
	Repos      []Repository
	CapturedAt time.Time
}

// Age returns how long ago the entry was captured.
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CapturedAt)
}

// Fresh reports whether the entry is still inside the freshness window.
// The comparison is strict: an entry exactly window old is expired.
func (e CacheEntry) Fresh(now time.Time, window time.Duration) bool {
	return e.Age(now) < window
}

// CacheStatus describes the stored repository cache without touching the network.
type CacheStatus struct {
	Present    bool
	Fresh      bool
	CapturedAt time.Time
	Count      int
}
