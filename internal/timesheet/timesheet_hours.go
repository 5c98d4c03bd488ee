package timesheet

import "math"

const (
	// StatusUnset is the reserved placeholder status of a cell awaiting
	// input. Every other status is an opaque key into the absence catalog.
	StatusUnset = "alege"

	// FullDayHours is the fixed hour value a full-day absence contributes.
	FullDayHours = 8.0
)

type HoursSource string

const (
	SourceExplicit       HoursSource = "explicit"
	SourceAbsenceDefault HoursSource = "absence_default"
)

// AbsenceRule is the slice of the absence-type catalog the grid logic cares
// about. Callers pass a snapshot; nothing here mutates it.
type AbsenceRule struct {
	Code          string
	Name          string
	RequiresHours bool
	SortOrder     int
}

// DayCell is one employee's record for one calendar date.
type DayCell struct {
	TimeInterval string  `json:"timeInterval"`
	Hours        float64 `json:"hours"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
}

type EffectiveDay struct {
	Hours          float64
	Source         HoursSource
	FullDayAbsence bool
}

// EffectiveHours resolves the hours a day contributes to totals. A status
// matching a full-day absence rule overrides whatever hours are stored;
// unknown codes and partial-hours absences fall through to the explicit
// value so legacy or renamed codes degrade without corrupting totals.
func EffectiveHours(day *DayCell, rules []AbsenceRule) EffectiveDay {
	if day == nil {
		return EffectiveDay{Source: SourceExplicit}
	}

	if day.Status != "" && day.Status != StatusUnset {
		if rule := findRule(day.Status, rules); rule != nil && !rule.RequiresHours {
			return EffectiveDay{
				Hours:          FullDayHours,
				Source:         SourceAbsenceDefault,
				FullDayAbsence: true,
			}
		}
	}

	return EffectiveDay{
		Hours:  day.Hours,
		Source: SourceExplicit,
	}
}

// TotalEffectiveHours sums effective hours over a day map, rounded to two
// decimals to keep float accumulation out of the result.
func TotalEffectiveHours(days map[string]DayCell, rules []AbsenceRule) float64 {
	var total float64
	for _, day := range days {
		d := day
		total += EffectiveHours(&d, rules).Hours
	}
	return round2(total)
}

// IsFullDayAbsence reports whether status maps to a rule that does not
// require explicit hours. The unset sentinel and unrecognized codes are not
// full-day absences.
func IsFullDayAbsence(status string, rules []AbsenceRule) bool {
	if status == "" || status == StatusUnset {
		return false
	}
	rule := findRule(status, rules)
	return rule != nil && !rule.RequiresHours
}

func findRule(code string, rules []AbsenceRule) *AbsenceRule {
	for i := range rules {
		if rules[i].Code == code {
			return &rules[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
