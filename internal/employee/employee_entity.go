package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_employees_company_number"`
	EmployeeNumber string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_employees_company_number"`
	StoreID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ZoneID         *uuid.UUID `gorm:"type:uuid;index"`
	FullName       string     `gorm:"type:varchar(150);not null"`
	Email          string     `gorm:"type:varchar(150)"`
	Position       string     `gorm:"type:varchar(100)"`
	IsActive       bool       `gorm:"not null;default:true"`
	HiredAt        *time.Time `gorm:"type:date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
