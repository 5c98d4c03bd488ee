package timesheet

import (
	"encoding/json"
	"sort"
	"time"
)

// employeesKey marks the legacy storage shape: employee identities live
// under this reserved key and every other top-level key is a date mapping
// employee id to that day's payload. The current shape keys the document by
// employee id with a nested "days" map.
const employeesKey = "_employees"

const dateLayout = "2006-01-02"

// GridEntry is one employee's reconstructed row: a dense date -> cell map
// covering the whole requested period.
type GridEntry struct {
	EmployeeID   string             `json:"employeeId"`
	EmployeeName string             `json:"employeeName"`
	Position     string             `json:"position"`
	Days         map[string]DayCell `json:"days"`
}

// ReconstructEntries rebuilds the canonical grid from a stored document.
// Either historical shape is accepted; an empty or non-object payload yields
// an empty grid so a corrupt record still renders as an editable blank. The
// output always holds exactly employees x days-in-period cells, sparse input
// filled with unset placeholders.
func ReconstructEntries(raw []byte, periodStart, periodEnd time.Time) []GridEntry {
	dates := periodDates(periodStart, periodEnd)

	var doc map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &doc) != nil || doc == nil {
		return []GridEntry{}
	}

	var entries []GridEntry
	if _, legacy := doc[employeesKey]; legacy {
		entries = parseLegacyShape(doc, dates)
	} else {
		entries = parseCurrentShape(doc, dates)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EmployeeName != entries[j].EmployeeName {
			return entries[i].EmployeeName < entries[j].EmployeeName
		}
		return entries[i].EmployeeID < entries[j].EmployeeID
	})
	return entries
}

type employeeMeta struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

func parseLegacyShape(doc map[string]json.RawMessage, dates []string) []GridEntry {
	var employees map[string]employeeMeta
	if json.Unmarshal(doc[employeesKey], &employees) != nil || len(employees) == 0 {
		return []GridEntry{}
	}

	// date key -> employee id -> day payload
	stored := make(map[string]map[string]json.RawMessage)
	for key, value := range doc {
		if key == employeesKey {
			continue
		}
		var perEmployee map[string]json.RawMessage
		if json.Unmarshal(value, &perEmployee) != nil {
			continue
		}
		stored[key] = perEmployee
	}

	entries := make([]GridEntry, 0, len(employees))
	for id, meta := range employees {
		entry := GridEntry{
			EmployeeID:   id,
			EmployeeName: meta.Name,
			Position:     meta.Position,
			Days:         make(map[string]DayCell, len(dates)),
		}
		for _, date := range dates {
			entry.Days[date] = decodeDayCell(stored[date][id])
		}
		entries = append(entries, entry)
	}
	return entries
}

type currentEmployeeDoc struct {
	Name     string                     `json:"name"`
	Position string                     `json:"position"`
	Days     map[string]json.RawMessage `json:"days"`
}

func parseCurrentShape(doc map[string]json.RawMessage, dates []string) []GridEntry {
	entries := make([]GridEntry, 0, len(doc))
	for id, value := range doc {
		var emp currentEmployeeDoc
		if json.Unmarshal(value, &emp) != nil {
			continue
		}
		entry := GridEntry{
			EmployeeID:   id,
			EmployeeName: emp.Name,
			Position:     emp.Position,
			Days:         make(map[string]DayCell, len(dates)),
		}
		for _, date := range dates {
			entry.Days[date] = decodeDayCell(emp.Days[date])
		}
		entries = append(entries, entry)
	}
	return entries
}

// rawDayCell tolerates the historical encodings of a stored day: hours as a
// number, hours as an "H-H" interval string, or no hours at all with only a
// timeInterval to derive them from.
type rawDayCell struct {
	TimeInterval string          `json:"timeInterval"`
	Hours        json.RawMessage `json:"hours"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}

func decodeDayCell(raw json.RawMessage) DayCell {
	placeholder := DayCell{Status: StatusUnset}
	if len(raw) == 0 {
		return placeholder
	}

	var stored rawDayCell
	if json.Unmarshal(raw, &stored) != nil {
		return placeholder
	}

	cell := DayCell{
		TimeInterval: stored.TimeInterval,
		Status:       stored.Status,
		Notes:        stored.Notes,
	}
	if cell.Status == "" {
		cell.Status = StatusUnset
	}
	cell.Hours = reconcileHours(stored.Hours, stored.TimeInterval)
	return cell
}

func reconcileHours(rawHours json.RawMessage, timeInterval string) float64 {
	if len(rawHours) > 0 {
		var numeric float64
		if json.Unmarshal(rawHours, &numeric) == nil {
			return numeric
		}
		var text string
		if json.Unmarshal(rawHours, &text) == nil {
			if iv := ParseInterval(text); iv != nil {
				return iv.Hours
			}
		}
	}
	if iv := ParseInterval(timeInterval); iv != nil {
		return iv.Hours
	}
	return 0
}

// MarshalEntries serializes the grid back into the current storage shape.
// Legacy-shaped documents are upgraded on their first save.
func MarshalEntries(entries []GridEntry) ([]byte, error) {
	doc := make(map[string]currentEmployeeOut, len(entries))
	for _, entry := range entries {
		days := make(map[string]DayCell, len(entry.Days))
		for date, cell := range entry.Days {
			days[date] = cell
		}
		doc[entry.EmployeeID] = currentEmployeeOut{
			Name:     entry.EmployeeName,
			Position: entry.Position,
			Days:     days,
		}
	}
	return json.Marshal(doc)
}

type currentEmployeeOut struct {
	Name     string             `json:"name"`
	Position string             `json:"position"`
	Days     map[string]DayCell `json:"days"`
}

func periodDates(start, end time.Time) []string {
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}
