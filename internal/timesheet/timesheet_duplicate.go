package timesheet

import "time"

type ConflictType string

const (
	ConflictExactPeriod ConflictType = "exact_period"
	ConflictSameMonth   ConflictType = "same_month"
	ConflictOverlap     ConflictType = "overlapping_period"
)

type DuplicateVerdict struct {
	HasDuplicate bool
	ConflictType ConflictType
	Existing     *Timesheet
}

// ClassifyConflict grades candidate timesheets against a requested period.
// Precedence: exact_period beats same_month beats overlapping_period. The
// same-month rule fires on matching calendar month of the period starts even
// when the day ranges never touch; at most one timesheet per store per month
// is a deliberate business rule. excludeID lets an edit re-save itself.
func ClassifyConflict(candidates []Timesheet, periodStart, periodEnd time.Time, excludeID string) DuplicateVerdict {
	best := DuplicateVerdict{}
	bestRank := 0

	for i := range candidates {
		candidate := &candidates[i]
		if excludeID != "" && candidate.ID.String() == excludeID {
			continue
		}

		conflict, ok := classifyOne(candidate, periodStart, periodEnd)
		if !ok {
			continue
		}

		rank := conflictRank(conflict)
		if rank > bestRank {
			best = DuplicateVerdict{
				HasDuplicate: true,
				ConflictType: conflict,
				Existing:     candidate,
			}
			bestRank = rank
		}
	}

	return best
}

func classifyOne(candidate *Timesheet, periodStart, periodEnd time.Time) (ConflictType, bool) {
	if sameDate(candidate.PeriodStart, periodStart) && sameDate(candidate.PeriodEnd, periodEnd) {
		return ConflictExactPeriod, true
	}

	if candidate.PeriodStart.Year() == periodStart.Year() &&
		candidate.PeriodStart.Month() == periodStart.Month() {
		return ConflictSameMonth, true
	}

	// inclusive interval intersection
	if !candidate.PeriodStart.After(periodEnd) && !candidate.PeriodEnd.Before(periodStart) {
		return ConflictOverlap, true
	}

	return "", false
}

func conflictRank(c ConflictType) int {
	switch c {
	case ConflictExactPeriod:
		return 3
	case ConflictSameMonth:
		return 2
	case ConflictOverlap:
		return 1
	default:
		return 0
	}
}

func sameDate(a, b time.Time) bool {
	return a.Format(dateLayout) == b.Format(dateLayout)
}

// ConflictMessage is the human-readable accompaniment of a verdict, kept
// beside the classification so callers all surface the same wording.
func ConflictMessage(c ConflictType) string {
	switch c {
	case ConflictExactPeriod:
		return "a timesheet for this exact period already exists for this store"
	case ConflictSameMonth:
		return "this store already has a timesheet in this calendar month"
	case ConflictOverlap:
		return "the requested period overlaps an existing timesheet for this store"
	default:
		return ""
	}
}
