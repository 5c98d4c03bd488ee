package timesheet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Timesheet is one store's pay-period document. The per-employee/per-day
// grid lives denormalized in DailyEntries; the canonical in-memory shape is
// rebuilt from it on every load (see timesheet_grid.go).
//
// PeriodMonth is a derived "YYYY-MM" bucket of PeriodStart; the composite
// unique index turns the one-timesheet-per-store-per-month rule into a
// storage-level guarantee, closing the window between the advisory duplicate
// check and the write.
type Timesheet struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_timesheets_company_store"`
	StoreID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_timesheets_company_store;uniqueIndex:uq_timesheets_store_month"`
	ZoneID       *uuid.UUID     `gorm:"type:uuid"`
	PeriodStart  time.Time      `gorm:"type:date;not null"`
	PeriodEnd    time.Time      `gorm:"type:date;not null"`
	PeriodMonth  string         `gorm:"type:varchar(7);not null;uniqueIndex:uq_timesheets_store_month"`
	DailyEntries datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}

// AbsenceTypeRef is a read-only view over the absencetype slice's table; the
// grid only ever needs the rule fields.
type AbsenceTypeRef struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid"`
	Code          string    `gorm:"column:code"`
	Name          string    `gorm:"column:name"`
	RequiresHours bool      `gorm:"column:requires_hours"`
	SortOrder     int       `gorm:"column:sort_order"`
	IsActive      bool      `gorm:"column:is_active"`
}

func (AbsenceTypeRef) TableName() string {
	return "absence_types"
}
