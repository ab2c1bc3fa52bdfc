package entities

import (
	"strings"

	"github.com/google/uuid"
)

// InquiryStatus tracks a public question ("duvida"). The funnel values beyond
// ASKED/ANSWERED mirror LeadStatus so an inquiry can be triaged like a lead.
type InquiryStatus string

const (
	InquiryStatusAsked       InquiryStatus = "ASKED"
	InquiryStatusAnswered    InquiryStatus = "ANSWERED"
	InquiryStatusProspect    InquiryStatus = "PROSPECT"
	InquiryStatusNegotiation InquiryStatus = "NEGOTIATION"
	InquiryStatusWin         InquiryStatus = "WIN"
	InquiryStatusLost        InquiryStatus = "LOST"
	InquiryStatusInterrupted InquiryStatus = "INTERRUPTED"
)

// InquiryStatuses lists every inquiry status
var InquiryStatuses = []InquiryStatus{
	InquiryStatusAsked,
	InquiryStatusAnswered,
	InquiryStatusProspect,
	InquiryStatusNegotiation,
	InquiryStatusWin,
	InquiryStatusLost,
	InquiryStatusInterrupted,
}

// Valid reports whether s is a known inquiry status
func (s InquiryStatus) Valid() bool {
	for _, known := range InquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Inquiry is a standalone public question, not linked to a lead
type Inquiry struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Question string        `json:"question"`
	Answer   string        `json:"answer,omitempty"`
	Status   InquiryStatus `json:"status"`
	Audit
}

// CreateInquiryInput represents a public inquiry submission
type CreateInquiryInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,numeric,min=10,max=11"`
	Question string `json:"question" binding:"required"`
}

// UpdateInquiryInput is a partial update. Nil fields are left untouched.
type UpdateInquiryInput struct {
	Name     *string        `json:"name"`
	Email    *string        `json:"email" binding:"omitempty,email"`
	Phone    *string        `json:"phone" binding:"omitempty,numeric,min=10,max=11"`
	Question *string        `json:"question"`
	Answer   *string        `json:"answer"`
	Status   *InquiryStatus `json:"status" binding:"omitempty,oneof=ASKED ANSWERED PROSPECT NEGOTIATION WIN LOST INTERRUPTED"`
}

// ApplyTo merges the patch into q. When the merged status is ASKED and the
// patch carries a non-blank answer, the status becomes ANSWERED.
func (in *UpdateInquiryInput) ApplyTo(q *Inquiry) {
	setString(&q.Name, in.Name)
	setString(&q.Email, in.Email)
	setString(&q.Phone, in.Phone)
	setString(&q.Question, in.Question)
	setString(&q.Answer, in.Answer)
	if in.Status != nil {
		q.Status = *in.Status
	}

	if q.Status == InquiryStatusAsked && in.Answer != nil && strings.TrimSpace(*in.Answer) != "" {
		q.Status = InquiryStatusAnswered
	}
}
