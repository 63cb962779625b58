package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guijosegon/portfolio/internal/application"
)

func TestClassifyActivity(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		wantTier application.ActivityTier
	}{
		{"30 minutes ago is hot", 30 * time.Minute, application.TierHot},
		{"59 minutes ago is hot (boundary)", 59 * time.Minute, application.TierHot},
		{"61 minutes ago is active (boundary)", 61 * time.Minute, application.TierActive},
		{"12 hours ago is active", 12 * time.Hour, application.TierActive},
		{"25 hours ago is warm", 25 * time.Hour, application.TierWarm},
		{"3 days ago is warm", 3 * 24 * time.Hour, application.TierWarm},
		{"8 days ago is stale", 8 * 24 * time.Hour, application.TierStale},
		{"zero time is stale", 0, application.TierStale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pushedAt time.Time
			if tt.elapsed > 0 {
				pushedAt = fixedNow.Add(-tt.elapsed)
			}
			assert.Equal(t, tt.wantTier, application.ClassifyActivity(pushedAt, fixedNow))
		})
	}
}

func TestActivityTier_String(t *testing.T) {
	assert.Equal(t, "hot", application.TierHot.String())
	assert.Equal(t, "active", application.TierActive.String())
	assert.Equal(t, "warm", application.TierWarm.String())
	assert.Equal(t, "stale", application.TierStale.String())
	assert.Equal(t, "unknown", application.ActivityTier(99).String())
}
