package delegation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Delegation temporarily (or, for a transfer, permanently) reassigns an
// employee's effective store. ValidUntil is nil for transfers: the
// reassignment is open-ended from ValidFrom.
type Delegation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_delegations_company_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_delegations_employee_dates"`

	FromStoreID uuid.UUID  `gorm:"type:uuid;not null"`
	ToStoreID   uuid.UUID  `gorm:"type:uuid;not null"`
	Kind        string     `gorm:"type:varchar(20);not null;default:'DELEGATION'"`
	ValidFrom   time.Time  `gorm:"type:date;not null;index:idx_delegations_employee_dates"`
	ValidUntil  *time.Time `gorm:"type:date;index:idx_delegations_employee_dates"`
	Reason      string     `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_delegations_company_status"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Delegation) TableName() string {
	return "delegations"
}
