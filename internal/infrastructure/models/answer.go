package models

import (
	"github.com/google/uuid"
)

type Answer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeadID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Lead         *Lead     `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	QuestionText string    `gorm:"type:text;not null"`
	AnswerText   string    `gorm:"type:text"`
	AuditColumns
}

func (Answer) TableName() string {
	return "answers"
}
