package models

import (
	"time"
)

// AuditColumns is embedded by every table. A NULL deactivated_at marks a live row.
type AuditColumns struct {
	CreatedBy     *string    `gorm:"type:varchar(36)"`
	CreatedAt     time.Time  `gorm:"not null"`
	ModifiedBy    *string    `gorm:"type:varchar(36)"`
	ModifiedAt    time.Time  `gorm:"not null"`
	DeactivatedBy *string    `gorm:"type:varchar(36)"`
	DeactivatedAt *time.Time `gorm:"index"`
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Lead{},
		&Question{},
		&Answer{},
		&FollowUp{},
		&Inquiry{},
	}
}
