package timesheet_test

import (
	"testing"

	"go-pontaj/internal/timesheet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func candidate(t *testing.T, start, end string) timesheet.Timesheet {
	t.Helper()
	return timesheet.Timesheet{
		ID:          uuid.New(),
		PeriodStart: mustDate(t, start),
		PeriodEnd:   mustDate(t, end),
	}
}

func TestClassifyConflict(t *testing.T) {
	periodStart := mustDate(t, "2026-03-01")
	periodEnd := mustDate(t, "2026-03-31")

	t.Run("no candidates", func(t *testing.T) {
		verdict := timesheet.ClassifyConflict(nil, periodStart, periodEnd, "")
		assert.False(t, verdict.HasDuplicate)
		assert.Nil(t, verdict.Existing)
	})

	t.Run("exact period", func(t *testing.T) {
		existing := candidate(t, "2026-03-01", "2026-03-31")
		verdict := timesheet.ClassifyConflict([]timesheet.Timesheet{existing}, periodStart, periodEnd, "")

		assert.True(t, verdict.HasDuplicate)
		assert.Equal(t, timesheet.ConflictExactPeriod, verdict.ConflictType)
		assert.Equal(t, existing.ID, verdict.Existing.ID)
	})

	t.Run("same month with disjoint day ranges", func(t *testing.T) {
		existing := candidate(t, "2026-03-01", "2026-03-10")
		verdict := timesheet.ClassifyConflict(
			[]timesheet.Timesheet{existing},
			mustDate(t, "2026-03-15"), mustDate(t, "2026-03-25"),
			"",
		)

		assert.True(t, verdict.HasDuplicate)
		assert.Equal(t, timesheet.ConflictSameMonth, verdict.ConflictType)
	})

	t.Run("cross month overlap", func(t *testing.T) {
		existing := candidate(t, "2026-02-15", "2026-03-05")
		verdict := timesheet.ClassifyConflict([]timesheet.Timesheet{existing}, periodStart, periodEnd, "")

		assert.True(t, verdict.HasDuplicate)
		assert.Equal(t, timesheet.ConflictOverlap, verdict.ConflictType)
	})

	t.Run("disjoint different month", func(t *testing.T) {
		existing := candidate(t, "2026-01-01", "2026-01-31")
		verdict := timesheet.ClassifyConflict([]timesheet.Timesheet{existing}, periodStart, periodEnd, "")

		assert.False(t, verdict.HasDuplicate)
	})

	t.Run("precedence picks the strongest conflict", func(t *testing.T) {
		overlap := candidate(t, "2026-02-15", "2026-03-05")
		sameMonth := candidate(t, "2026-03-10", "2026-03-12")
		exact := candidate(t, "2026-03-01", "2026-03-31")

		verdict := timesheet.ClassifyConflict(
			[]timesheet.Timesheet{overlap, sameMonth, exact},
			periodStart, periodEnd,
			"",
		)

		assert.True(t, verdict.HasDuplicate)
		assert.Equal(t, timesheet.ConflictExactPeriod, verdict.ConflictType)
		assert.Equal(t, exact.ID, verdict.Existing.ID)
	})

	t.Run("exclude id lets an edit re-save itself", func(t *testing.T) {
		existing := candidate(t, "2026-03-01", "2026-03-31")
		verdict := timesheet.ClassifyConflict(
			[]timesheet.Timesheet{existing},
			periodStart, periodEnd,
			existing.ID.String(),
		)

		assert.False(t, verdict.HasDuplicate)
	})

	t.Run("single day boundary touch counts as overlap", func(t *testing.T) {
		existing := candidate(t, "2026-02-01", "2026-03-01")
		verdict := timesheet.ClassifyConflict(
			[]timesheet.Timesheet{existing},
			periodStart, periodEnd,
			"",
		)

		assert.True(t, verdict.HasDuplicate)
		assert.Equal(t, timesheet.ConflictOverlap, verdict.ConflictType)
	})
}

func TestConflictMessage(t *testing.T) {
	assert.NotEmpty(t, timesheet.ConflictMessage(timesheet.ConflictExactPeriod))
	assert.NotEmpty(t, timesheet.ConflictMessage(timesheet.ConflictSameMonth))
	assert.NotEmpty(t, timesheet.ConflictMessage(timesheet.ConflictOverlap))
	assert.Empty(t, timesheet.ConflictMessage(timesheet.ConflictType("other")))
}
