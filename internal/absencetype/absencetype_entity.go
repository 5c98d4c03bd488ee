package absencetype

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceType is an admin-configurable category of non-working status.
// RequiresHours=false marks a full-day absence: the grid charges the fixed
// full-day value and ignores whatever hours a cell carries.
type AbsenceType struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_absence_types_company_code"`
	Code          string    `gorm:"size:30;not null;uniqueIndex:uq_absence_types_company_code"`
	Name          string    `gorm:"size:100;not null"`
	RequiresHours bool      `gorm:"not null;default:false"`
	ColorClass    string    `gorm:"size:50"`
	SortOrder     int       `gorm:"not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (AbsenceType) TableName() string {
	return "absence_types"
}
