package timesheet

type SaveDayCell struct {
	TimeInterval string  `json:"timeInterval"`
	Hours        float64 `json:"hours"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
}

type SaveGridEntry struct {
	EmployeeID   string                 `json:"employee_id" binding:"required"`
	EmployeeName string                 `json:"employee_name"`
	Position     string                 `json:"position"`
	Days         map[string]SaveDayCell `json:"days"`
}

type SaveTimesheetRequest struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id" binding:"required"`
	ZoneID      string          `json:"zone_id"`
	PeriodStart string          `json:"period_start" binding:"required"`
	PeriodEnd   string          `json:"period_end" binding:"required"`
	Entries     []SaveGridEntry `json:"entries"`
}

type CheckDuplicateRequest struct {
	StoreID     string `json:"store_id" binding:"required"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
	ExcludeID   string `json:"exclude_id"`
}

type ValidateCellRequest struct {
	TimeInterval string  `json:"timeInterval"`
	Status       string  `json:"status"`
	Hours        float64 `json:"hours"`
	Notes        string  `json:"notes"`
	IsWeekend    bool    `json:"is_weekend"`
}

type CellVerdictResponse struct {
	IsValid      bool     `json:"is_valid"`
	Type         string   `json:"type,omitempty"`
	Message      string   `json:"message,omitempty"`
	ValidOptions []string `json:"valid_options"`
}

type DayCellResponse struct {
	TimeInterval   string  `json:"timeInterval"`
	Hours          float64 `json:"hours"`
	EffectiveHours float64 `json:"effective_hours"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	FullDayAbsence bool    `json:"full_day_absence"`
}

type GridEntryResponse struct {
	EmployeeID       string                     `json:"employee_id"`
	EmployeeName     string                     `json:"employee_name"`
	Position         string                     `json:"position"`
	EffectiveStoreID string                     `json:"effective_store_id"`
	TotalHours       float64                    `json:"total_hours"`
	Days             map[string]DayCellResponse `json:"days"`
}

type GridResponse struct {
	ID          string              `json:"id"`
	CompanyID   string              `json:"company_id"`
	StoreID     string              `json:"store_id"`
	ZoneID      string              `json:"zone_id,omitempty"`
	PeriodStart string              `json:"period_start"`
	PeriodEnd   string              `json:"period_end"`
	Entries     []GridEntryResponse `json:"entries"`
	TotalHours  float64             `json:"total_hours"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

type TimesheetResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	StoreID     string `json:"store_id"`
	ZoneID      string `json:"zone_id,omitempty"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type DuplicateResponse struct {
	HasDuplicate bool   `json:"has_duplicate"`
	ConflictType string `json:"conflict_type,omitempty"`
	Message      string `json:"message,omitempty"`
	ExistingID   string `json:"existing_id,omitempty"`
}

type EmployeeTotalResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	TotalHours   float64 `json:"total_hours"`
}
