package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LeadStatus is the funnel stage label. Any status may be set from any other.
type LeadStatus string

const (
	LeadStatusLead        LeadStatus = "LEAD"
	LeadStatusProspect    LeadStatus = "PROSPECT"
	LeadStatusNegotiation LeadStatus = "NEGOTIATION"
	LeadStatusWin         LeadStatus = "WIN"
	LeadStatusLost        LeadStatus = "LOST"
	LeadStatusInterrupted LeadStatus = "INTERRUPTED"
)

// LeadStatuses lists the funnel in presentation order
var LeadStatuses = []LeadStatus{
	LeadStatusLead,
	LeadStatusProspect,
	LeadStatusNegotiation,
	LeadStatusWin,
	LeadStatusLost,
	LeadStatusInterrupted,
}

// Valid reports whether s is a known funnel status
func (s LeadStatus) Valid() bool {
	for _, known := range LeadStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Address is a postal address. PostalCode is the 8 digit CEP.
type Address struct {
	PostalCode   string `json:"postalCode,omitempty"`
	Street       string `json:"street,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
}

// Lead ("interessado") is a prospective customer tracked through the funnel
type Lead struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Status        LeadStatus `json:"status"`
	IsActive      bool       `json:"isActive"`
	TaxID         string     `json:"taxId,omitempty"`
	Address       Address    `json:"address"`
	Profession    string     `json:"profession,omitempty"`
	LicenseNumber string     `json:"licenseNumber,omitempty"`
	Experience    string     `json:"experience,omitempty"`
	WorkAddress   Address    `json:"workAddress"`
	Audit
}

// Deactivate soft deletes the lead and clears IsActive
func (l *Lead) Deactivate(by null.String, at time.Time) error {
	if err := l.StampDeactivated(by, at); err != nil {
		return err
	}
	l.IsActive = false
	return nil
}

// Activate restores the lead
func (l *Lead) Activate(by null.String, at time.Time) error {
	if err := l.ClearDeactivation(by, at); err != nil {
		return err
	}
	l.IsActive = true
	return nil
}

// LeadDetail is a lead together with its qualification answers and follow-up log
type LeadDetail struct {
	*Lead
	Answers   []*Answer   `json:"answers"`
	FollowUps []*FollowUp `json:"followUps"`
}

// AddressInput carries address fields from the transport layer
type AddressInput struct {
	PostalCode   *string `json:"postalCode" binding:"omitempty,len=8,numeric"`
	Street       *string `json:"street"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state" binding:"omitempty,len=2,alpha"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
}

// ApplyTo merges non-nil fields into a
func (in *AddressInput) ApplyTo(a *Address) {
	if in == nil {
		return
	}
	setString(&a.PostalCode, in.PostalCode)
	setString(&a.Street, in.Street)
	setString(&a.Neighborhood, in.Neighborhood)
	setString(&a.City, in.City)
	setString(&a.State, in.State)
	setString(&a.Number, in.Number)
	setString(&a.Complement, in.Complement)
}

// CreateLeadInput represents input for capturing a lead
type CreateLeadInput struct {
	Name          string        `json:"name" binding:"required,min=1,max=255"`
	Email         string        `json:"email" binding:"required,email"`
	Phone         string        `json:"phone" binding:"required,numeric,min=10,max=11"`
	Status        LeadStatus    `json:"status" binding:"omitempty,oneof=LEAD PROSPECT NEGOTIATION WIN LOST INTERRUPTED"`
	TaxID         string        `json:"taxId" binding:"omitempty,len=11,numeric"`
	Address       *AddressInput `json:"address"`
	Profession    string        `json:"profession"`
	LicenseNumber string        `json:"licenseNumber"`
	Experience    string        `json:"experience"`
	WorkAddress   *AddressInput `json:"workAddress"`
}

// UpdateLeadInput is a partial update. Nil fields are left untouched.
type UpdateLeadInput struct {
	Name          *string       `json:"name" binding:"omitempty,min=1,max=255"`
	Email         *string       `json:"email" binding:"omitempty,email"`
	Phone         *string       `json:"phone" binding:"omitempty,numeric,min=10,max=11"`
	Status        *LeadStatus   `json:"status" binding:"omitempty,oneof=LEAD PROSPECT NEGOTIATION WIN LOST INTERRUPTED"`
	TaxID         *string       `json:"taxId" binding:"omitempty,len=11,numeric"`
	Address       *AddressInput `json:"address"`
	Profession    *string       `json:"profession"`
	LicenseNumber *string       `json:"licenseNumber"`
	Experience    *string       `json:"experience"`
	WorkAddress   *AddressInput `json:"workAddress"`
}

// ApplyTo merges non-nil fields into l
func (in *UpdateLeadInput) ApplyTo(l *Lead) {
	setString(&l.Name, in.Name)
	setString(&l.Email, in.Email)
	setString(&l.Phone, in.Phone)
	if in.Status != nil {
		l.Status = *in.Status
	}
	setString(&l.TaxID, in.TaxID)
	in.Address.ApplyTo(&l.Address)
	setString(&l.Profession, in.Profession)
	setString(&l.LicenseNumber, in.LicenseNumber)
	setString(&l.Experience, in.Experience)
	in.WorkAddress.ApplyTo(&l.WorkAddress)
}

// LeadStats counts leads per funnel status
type LeadStats struct {
	Total    int64                `json:"total"`
	ByStatus map[LeadStatus]int64 `json:"byStatus"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
