package timesheet

import (
	"sort"
	"strings"
)

type VerdictType string

const (
	VerdictError   VerdictType = "error"
	VerdictWarning VerdictType = "warning"
	VerdictInfo    VerdictType = "info"
)

// CellContext bundles everything needed to judge a single grid cell.
type CellContext struct {
	TimeInterval string
	Status       string
	Hours        float64
	Notes        string
	IsWeekend    bool
	Rules        []AbsenceRule
}

type CellVerdict struct {
	IsValid bool
	Type    VerdictType
	Message string
}

func (ctx CellContext) hasWorkedTime() bool {
	return ctx.Hours > 0 || strings.TrimSpace(ctx.TimeInterval) != ""
}

// ValidateCell classifies one cell. A full-day absence owns the whole day,
// so pairing it with an interval or explicit hours is an error. A
// partial-hours absence without any hours is flagged as a warning rather
// than blocking the save. The unset sentinel is always structurally valid.
func ValidateCell(ctx CellContext) CellVerdict {
	interval := strings.TrimSpace(ctx.TimeInterval)

	if interval != "" && ParseInterval(interval) == nil {
		return CellVerdict{
			IsValid: false,
			Type:    VerdictError,
			Message: "time interval must look like 9-17 or 9:30-17:30, at most 16 hours",
		}
	}

	if ctx.Status == "" || ctx.Status == StatusUnset {
		if ctx.IsWeekend && ctx.hasWorkedTime() && ctx.Notes == "" {
			return CellVerdict{
				IsValid: true,
				Type:    VerdictInfo,
				Message: "weekend work recorded without a note",
			}
		}
		return CellVerdict{IsValid: true}
	}

	rule := findRule(ctx.Status, ctx.Rules)
	if rule == nil {
		return CellVerdict{
			IsValid: true,
			Type:    VerdictWarning,
			Message: "unrecognized absence code, treated as explicit hours",
		}
	}

	if !rule.RequiresHours {
		if ctx.hasWorkedTime() {
			return CellVerdict{
				IsValid: false,
				Type:    VerdictError,
				Message: "a full-day absence cannot be combined with worked hours or a time interval",
			}
		}
		return CellVerdict{IsValid: true}
	}

	if !ctx.hasWorkedTime() {
		return CellVerdict{
			IsValid: true,
			Type:    VerdictWarning,
			Message: "this absence requires explicit hours",
		}
	}

	return CellVerdict{IsValid: true}
}

// ValidOptionsFor enumerates the status codes selectable for a cell in its
// current state, unset first, then catalog order. With worked time present
// only partial-hours absences remain selectable; an empty cell may pick any
// active absence and add hours afterward. Recomputed on every call.
func ValidOptionsFor(ctx CellContext) []string {
	ordered := make([]AbsenceRule, len(ctx.Rules))
	copy(ordered, ctx.Rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})

	options := []string{StatusUnset}
	hasWork := ctx.hasWorkedTime()
	for _, rule := range ordered {
		if hasWork && !rule.RequiresHours {
			continue
		}
		options = append(options, rule.Code)
	}
	return options
}
