package models

import (
	"github.com/google/uuid"
)

type FollowUp struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeadID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Lead    *Lead     `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Text    string    `gorm:"type:text;not null"`
	Channel string    `gorm:"type:varchar(20);not null"`
	AuditColumns
}

func (FollowUp) TableName() string {
	return "follow_ups"
}
