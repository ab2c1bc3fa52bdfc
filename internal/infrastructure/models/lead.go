package models

import (
	"github.com/google/uuid"
)

type AddressColumns struct {
	PostalCode   string `gorm:"type:varchar(8)"`
	Street       string `gorm:"type:varchar(255)"`
	Neighborhood string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(255)"`
	State        string `gorm:"type:varchar(2)"`
	Number       string `gorm:"type:varchar(20)"`
	Complement   string `gorm:"type:varchar(255)"`
}

type Lead struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Email         string         `gorm:"type:varchar(255);not null"`
	Phone         string         `gorm:"type:varchar(11);not null"`
	Status        string         `gorm:"type:varchar(20);not null;default:'LEAD';index"`
	IsActive      bool           `gorm:"not null"`
	TaxID         string         `gorm:"type:varchar(11)"`
	Address       AddressColumns `gorm:"embedded"`
	Profession    string         `gorm:"type:varchar(255)"`
	LicenseNumber string         `gorm:"type:varchar(50)"`
	Experience    string         `gorm:"type:text"`
	WorkAddress   AddressColumns `gorm:"embedded;embeddedPrefix:work_"`
	AuditColumns
}

func (Lead) TableName() string {
	return "leads"
}
