package application

import (
	"time"
)

// ActivityTier classifies a repository by how recently it was pushed to.
type ActivityTier int

const (
	// TierHot indicates a push within the last hour.
	TierHot ActivityTier = iota
	// TierActive indicates a push within the last day.
	TierActive
	// TierWarm indicates a push within the last 7 days.
	TierWarm
	// TierStale indicates no push for 7+ days, or an unknown push time.
	TierStale
)

const (
	thresholdHot    = time.Hour
	thresholdActive = 24 * time.Hour
	thresholdWarm   = 7 * 24 * time.Hour
)

// String returns a human-readable name for the activity tier.
func (t ActivityTier) String() string {
	switch t {
	case TierHot:
		return "hot"
	case TierActive:
		return "active"
	case TierWarm:
		return "warm"
	case TierStale:
		return "stale"
	default:
		return "unknown"
	}
}

// ClassifyActivity determines the activity tier for a push time relative to now.
func ClassifyActivity(pushedAt, now time.Time) ActivityTier {
	if pushedAt.IsZero() {
		return TierStale
	}

	elapsed := now.Sub(pushedAt)
	switch {
	case elapsed < thresholdHot:
		return TierHot
	case elapsed < thresholdActive:
		return TierActive
	case elapsed < thresholdWarm:
		return TierWarm
	default:
		return TierStale
	}
}
