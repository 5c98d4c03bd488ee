package timesheet_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-pontaj/internal/timesheet"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return parsed
}

func TestReconstructEntries_CurrentShape(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	end := mustDate(t, "2026-03-04")

	raw := []byte(`{
		"emp-1": {
			"name": "Ana Pop",
			"position": "Farmacist",
			"days": {
				"2026-03-02": {"timeInterval": "10-18", "hours": 8, "status": "alege"},
				"2026-03-03": {"status": "CO"}
			}
		}
	}`)

	entries := timesheet.ReconstructEntries(raw, start, end)
	assert.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "emp-1", entry.EmployeeID)
	assert.Equal(t, "Ana Pop", entry.EmployeeName)
	assert.Equal(t, "Farmacist", entry.Position)

	// dense over the period, missing dates filled with unset placeholders
	assert.Len(t, entry.Days, 3)
	assert.Equal(t, 8.0, entry.Days["2026-03-02"].Hours)
	assert.Equal(t, "CO", entry.Days["2026-03-03"].Status)
	assert.Equal(t, timesheet.StatusUnset, entry.Days["2026-03-04"].Status)
}

func TestReconstructEntries_LegacyShape(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	end := mustDate(t, "2026-03-03")

	raw := []byte(`{
		"_employees": {
			"emp-1": {"name": "Ana Pop", "position": "Farmacist"},
			"emp-2": {"name": "Bogdan Ionescu", "position": "Asistent"}
		},
		"2026-03-02": {
			"emp-1": {"timeInterval": "9:30-17:30", "status": "alege"},
			"emp-2": {"hours": "10-18", "status": "alege"}
		}
	}`)

	entries := timesheet.ReconstructEntries(raw, start, end)
	assert.Len(t, entries, 2)

	// sorted by name
	assert.Equal(t, "Ana Pop", entries[0].EmployeeName)
	assert.Equal(t, "Bogdan Ionescu", entries[1].EmployeeName)

	// hours derived from the interval when the stored value is absent
	assert.Equal(t, 8.0, entries[0].Days["2026-03-02"].Hours)

	// legacy string-encoded hours reconciled through interval parsing
	assert.Equal(t, 8.0, entries[1].Days["2026-03-02"].Hours)

	// date outside the stored keys filled as placeholder for everyone
	assert.Equal(t, timesheet.StatusUnset, entries[0].Days["2026-03-03"].Status)
	assert.Equal(t, timesheet.StatusUnset, entries[1].Days["2026-03-03"].Status)
}

func TestReconstructEntries_BadPayloads(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	end := mustDate(t, "2026-03-03")

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty", raw: nil},
		{name: "not json", raw: []byte("not-json")},
		{name: "json null", raw: []byte("null")},
		{name: "json array", raw: []byte(`[1, 2]`)},
		{name: "legacy marker without employees", raw: []byte(`{"_employees": "bad"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := timesheet.ReconstructEntries(tt.raw, start, end)
			assert.NotNil(t, entries)
			assert.Empty(t, entries)
		})
	}
}

func TestReconstructEntries_StableOrder(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	end := mustDate(t, "2026-03-02")

	raw := []byte(`{
		"emp-b": {"name": "Ana Pop", "days": {}},
		"emp-a": {"name": "Ana Pop", "days": {}},
		"emp-c": {"name": "Alina Radu", "days": {}}
	}`)

	entries := timesheet.ReconstructEntries(raw, start, end)
	assert.Len(t, entries, 3)
	assert.Equal(t, "emp-c", entries[0].EmployeeID)
	// tie on name breaks on employee id
	assert.Equal(t, "emp-a", entries[1].EmployeeID)
	assert.Equal(t, "emp-b", entries[2].EmployeeID)
}

func TestMarshalEntries_RoundTripUpgradesLegacy(t *testing.T) {
	start := mustDate(t, "2026-03-02")
	end := mustDate(t, "2026-03-03")

	legacy := []byte(`{
		"_employees": {"emp-1": {"name": "Ana Pop", "position": "Farmacist"}},
		"2026-03-02": {"emp-1": {"timeInterval": "10-18", "hours": 8, "status": "alege"}}
	}`)

	entries := timesheet.ReconstructEntries(legacy, start, end)
	payload, err := timesheet.MarshalEntries(entries)
	assert.NoError(t, err)

	// the rewritten document is in the current shape
	var doc map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(payload, &doc))
	_, hasLegacyMarker := doc["_employees"]
	assert.False(t, hasLegacyMarker)
	assert.Contains(t, doc, "emp-1")

	reparsed := timesheet.ReconstructEntries(payload, start, end)
	assert.Equal(t, entries, reparsed)
}
