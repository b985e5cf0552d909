package models

import (
	"time"

	"github.com/google/uuid"
)

type ReminderLog struct {
	ID           uuid.UUID `json:"id"`
	RevisionID   uuid.UUID `json:"revisionId"`
	ClientName   string    `json:"clientName"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message"`
	Status       string    `json:"status"` // sent, failed, skipped
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Channel      string    `json:"channel"` // whatsapp, sms
	SentAt       time.Time `json:"sentAt"`
}
