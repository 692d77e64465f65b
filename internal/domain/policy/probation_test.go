package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInProbation(t *testing.T) {
	now := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	joined30 := now.AddDate(0, 0, -30)
	joined90 := now.AddDate(0, 0, -90)
	joined91 := now.AddDate(0, 0, -91)

	assert.True(t, InProbation(&joined30, 90, now))
	// The window is exactly probationPeriodDays long; day 90 is outside.
	assert.False(t, InProbation(&joined90, 90, now))
	assert.False(t, InProbation(&joined91, 90, now))

	assert.True(t, InProbation(nil, 90, now))
	assert.False(t, InProbation(&joined30, 0, now))
}
