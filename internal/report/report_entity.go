package report

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MonthlyStoreReport is a projection of saved timesheets, keyed by store and
// calendar month. EmployeeHours holds a map of employee id to effective hours.
type MonthlyStoreReport struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_reports_store_month"`
	StoreID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_reports_store_month"`
	Month         string         `gorm:"type:varchar(7);not null;uniqueIndex:uq_reports_store_month"`
	TimesheetID   uuid.UUID      `gorm:"type:uuid;not null"`
	TotalHours    float64        `gorm:"not null;default:0"`
	EmployeeHours datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt     time.Time
	CreatedAt     time.Time
}

func (MonthlyStoreReport) TableName() string {
	return "monthly_store_reports"
}
