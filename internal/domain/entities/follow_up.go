package entities

import (
	"github.com/google/uuid"
)

// Channel is the communication medium of a follow-up
type Channel string

const (
	ChannelVoice    Channel = "VOICE"
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelEmail    Channel = "EMAIL"
)

// Valid reports whether c is a known channel
func (c Channel) Valid() bool {
	switch c {
	case ChannelVoice, ChannelWhatsApp, ChannelEmail:
		return true
	}
	return false
}

// FollowUp is an interaction note attached to a lead
type FollowUp struct {
	ID      uuid.UUID `json:"id"`
	LeadID  uuid.UUID `json:"leadId"`
	Text    string    `json:"text"`
	Channel Channel   `json:"channel"`
	Audit
}

// CreateFollowUpInput represents input for appending a follow-up
type CreateFollowUpInput struct {
	LeadID  uuid.UUID `json:"leadId" binding:"required"`
	Text    string    `json:"text" binding:"required"`
	Channel Channel   `json:"channel" binding:"required,oneof=VOICE WHATSAPP EMAIL"`
}

// UpdateFollowUpInput is a partial update. Nil fields are left untouched.
type UpdateFollowUpInput struct {
	Text    *string  `json:"text" binding:"omitempty,min=1"`
	Channel *Channel `json:"channel" binding:"omitempty,oneof=VOICE WHATSAPP EMAIL"`
}

// ApplyTo merges non-nil fields into f
func (in *UpdateFollowUpInput) ApplyTo(f *FollowUp) {
	setString(&f.Text, in.Text)
	if in.Channel != nil {
		f.Channel = *in.Channel
	}
}
