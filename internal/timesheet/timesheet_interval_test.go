package timesheet_test

import (
	"testing"

	"go-pontaj/internal/timesheet"

	"github.com/stretchr/testify/assert"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNil   bool
		wantStart string
		wantEnd   string
		wantHours float64
	}{
		{name: "hour only", input: "10-18", wantStart: "10:00", wantEnd: "18:00", wantHours: 8},
		{name: "with minutes", input: "9:30-17:30", wantStart: "09:30", wantEnd: "17:30", wantHours: 8},
		{name: "mixed precision", input: "9-17:15", wantStart: "09:00", wantEnd: "17:15", wantHours: 8.25},
		{name: "overnight shift", input: "22-06", wantStart: "22:00", wantEnd: "06:00", wantHours: 8},
		{name: "overnight with minutes", input: "23:30-7:30", wantStart: "23:30", wantEnd: "07:30", wantHours: 8},
		{name: "surrounding whitespace", input: "  10-18  ", wantStart: "10:00", wantEnd: "18:00", wantHours: 8},
		{name: "equal endpoints roll a full day but exceed the cap", input: "9-9", wantNil: true},
		{name: "hour out of range", input: "25-9", wantNil: true},
		{name: "minute out of range", input: "9:75-17", wantNil: true},
		{name: "empty string", input: "", wantNil: true},
		{name: "whitespace only", input: "   ", wantNil: true},
		{name: "free text", input: "vacation", wantNil: true},
		{name: "missing end", input: "10-", wantNil: true},
		{name: "too long", input: "6-23", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timesheet.ParseInterval(tt.input)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.Equal(t, tt.wantStart, got.StartTime)
			assert.Equal(t, tt.wantEnd, got.EndTime)
			assert.Equal(t, tt.wantHours, got.Hours)
		})
	}
}

func TestParseInterval_CapBoundary(t *testing.T) {
	// exactly sixteen hours passes, one minute more does not
	atCap := timesheet.ParseInterval("6-22")
	assert.NotNil(t, atCap)
	assert.Equal(t, 16.0, atCap.Hours)

	overCap := timesheet.ParseInterval("6:00-22:01")
	assert.Nil(t, overCap)
}
