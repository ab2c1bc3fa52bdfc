package models

import (
	"github.com/google/uuid"
)

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	QuestionText string    `gorm:"type:text;not null"`
	Required     bool      `gorm:"not null;default:false"`
	Options      string    `gorm:"type:text"` // choices joined by ';', empty means free text
	AuditColumns
}

func (Question) TableName() string {
	return "questions"
}
