package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_stores_company_code"`
	ZoneID    *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(150);not null"`
	Code      string     `gorm:"type:varchar(30);not null;uniqueIndex:uq_stores_company_code"`
	Address   string     `gorm:"type:text"`
	IsActive  bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Store) TableName() string {
	return "stores"
}
