package report

import (
	"encoding/json"
	"time"
)

type MonthlyReportResponse struct {
	StoreID       string             `json:"storeId"`
	Month         string             `json:"month"`
	TimesheetID   string             `json:"timesheetId"`
	TotalHours    float64            `json:"totalHours"`
	EmployeeHours map[string]float64 `json:"employeeHours"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func mapToResponse(r *MonthlyStoreReport) *MonthlyReportResponse {
	hours := map[string]float64{}
	if len(r.EmployeeHours) > 0 {
		// A row written by an older producer may carry malformed hours;
		// surface the report with an empty breakdown rather than fail.
		_ = json.Unmarshal(r.EmployeeHours, &hours)
	}
	return &MonthlyReportResponse{
		StoreID:       r.StoreID.String(),
		Month:         r.Month,
		TimesheetID:   r.TimesheetID.String(),
		TotalHours:    r.TotalHours,
		EmployeeHours: hours,
		UpdatedAt:     r.UpdatedAt,
	}
}
