package events

import "time"

const TimesheetSavedTopic = "pontaj.timesheet.saved.v1"

// TimesheetSavedEvent carries the totals computed at save time so the report
// projection never has to re-open the timesheet document.
type TimesheetSavedEvent struct {
	EventType     string             `json:"event_type"`
	TimesheetID   string             `json:"timesheet_id"`
	CompanyID     string             `json:"company_id"`
	StoreID       string             `json:"store_id"`
	PeriodStart   string             `json:"period_start"`
	PeriodEnd     string             `json:"period_end"`
	TotalHours    float64            `json:"total_hours"`
	EmployeeHours map[string]float64 `json:"employee_hours"`
	OccurredAt    time.Time          `json:"occurred_at"`
}
