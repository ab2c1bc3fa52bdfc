package entities

import (
	"github.com/google/uuid"
)

// Question is an admin-configured qualification question.
// Empty Options means free text.
type Question struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"questionText"`
	Required     bool      `json:"required"`
	Options      []string  `json:"options"`
	Audit
}

// IsActive reports whether the question is shown on the public form
func (q *Question) IsActive() bool {
	return q.IsLive()
}

// IsMultipleChoice reports whether the question restricts answers to Options
func (q *Question) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// CreateQuestionInput represents input for creating a question
type CreateQuestionInput struct {
	QuestionText string   `json:"questionText" binding:"required,min=1"`
	Required     *bool    `json:"required"`
	Options      []string `json:"options" binding:"omitempty,dive,required"`
}

// UpdateQuestionInput is a partial update. Nil fields are left untouched.
type UpdateQuestionInput struct {
	QuestionText *string   `json:"questionText" binding:"omitempty,min=1"`
	Required     *bool     `json:"required"`
	Options      *[]string `json:"options"`
}

// ApplyTo merges non-nil fields into q
func (in *UpdateQuestionInput) ApplyTo(q *Question) {
	setString(&q.QuestionText, in.QuestionText)
	if in.Required != nil {
		q.Required = *in.Required
	}
	if in.Options != nil {
		q.Options = append([]string(nil), (*in.Options)...)
	}
}
