package entities

import (
	"github.com/google/uuid"
)

// Answer is an immutable snapshot of a lead's reply. QuestionText is copied at
// submission time and does not reference the question record.
type Answer struct {
	ID           uuid.UUID `json:"id"`
	LeadID       uuid.UUID `json:"leadId"`
	QuestionText string    `json:"questionText"`
	AnswerText   string    `json:"answerText"`
	Audit
}

// AnswerItem is one question/answer pair of a batch submission
type AnswerItem struct {
	QuestionText string `json:"questionText" binding:"required"`
	AnswerText   string `json:"answerText"`
}

// CreateAnswerInput represents input for a single answer
type CreateAnswerInput struct {
	LeadID       uuid.UUID `json:"leadId" binding:"required"`
	QuestionText string    `json:"questionText" binding:"required"`
	AnswerText   string    `json:"answerText"`
}

// SubmitAnswersInput represents a batch of answers for one lead
type SubmitAnswersInput struct {
	LeadID  uuid.UUID    `json:"leadId" binding:"required"`
	Answers []AnswerItem `json:"answers" binding:"required,min=1,dive"`
}

// CaptureInput is the public form submission: a lead and its answers in one request
type CaptureInput struct {
	Lead    CreateLeadInput `json:"lead"`
	Answers []AnswerItem    `json:"answers" binding:"omitempty,dive"`
}
