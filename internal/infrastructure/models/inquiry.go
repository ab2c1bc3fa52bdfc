package models

import (
	"github.com/google/uuid"
)

type Inquiry struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null"`
	Phone    string    `gorm:"type:varchar(11);not null"`
	Question string    `gorm:"type:text;not null"`
	Answer   string    `gorm:"type:text"`
	Status   string    `gorm:"type:varchar(20);not null;default:'ASKED';index"`
	AuditColumns
}

func (Inquiry) TableName() string {
	return "inquiries"
}
