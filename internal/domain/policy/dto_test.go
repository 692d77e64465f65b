package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTiers(t *testing.T) {
	tests := []struct {
		name  string
		tiers []WeekendDeductionTier
		valid bool
	}{
		{
			"ascending disjoint",
			[]WeekendDeductionTier{
				{MinExcessDays: 0, MaxExcessDays: 2},
				{MinExcessDays: 3, MaxExcessDays: 5},
				{MinExcessDays: 6, MaxExcessDays: 9999},
			},
			true,
		},
		{
			"overlapping bands",
			[]WeekendDeductionTier{
				{MinExcessDays: 0, MaxExcessDays: 5},
				{MinExcessDays: 3, MaxExcessDays: 8},
			},
			false,
		},
		{
			"inverted band",
			[]WeekendDeductionTier{
				{MinExcessDays: 5, MaxExcessDays: 3},
			},
			false,
		},
		{
			"out of order",
			[]WeekendDeductionTier{
				{MinExcessDays: 3, MaxExcessDays: 5},
				{MinExcessDays: 0, MaxExcessDays: 2},
			},
			false,
		},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTiers(tt.tiers)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTierTable)
			}
		})
	}
}

func TestSaturdayPattern_Valid(t *testing.T) {
	assert.True(t, SaturdayPattern1st3rd.Valid())
	assert.True(t, SaturdayPattern2nd4th.Valid())
	assert.True(t, SaturdayPatternAll.Valid())
	assert.True(t, SaturdayPatternNone.Valid())
	assert.False(t, SaturdayPattern("weekly").Valid())
	assert.False(t, SaturdayPattern("").Valid())
}

func TestUpdateSettingsRequest_Validate(t *testing.T) {
	bad := -1.0
	req := UpdateSettingsRequest{DailyWorkHours: &bad}
	assert.Error(t, req.Validate())

	good := 9.0
	req = UpdateSettingsRequest{DailyWorkHours: &good}
	assert.NoError(t, req.Validate())

	pct := 1.5
	req = UpdateSettingsRequest{EmergencyWFHDeductionPct: &pct}
	assert.Error(t, req.Validate())
}
