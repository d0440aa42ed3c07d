package events

import (
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintCreated       EventType = "complaint_created"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintDeleted       EventType = "complaint_deleted"
	EventUserRegistered         EventType = "user_registered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID int64       `json:"complaint_id,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	Category         domain.ComplaintCategory `json:"category"`
	SeriousnessScore float64                  `json:"seriousness_score"`
	Enriched         bool                     `json:"enriched"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}

// ComplaintDeletedPayload payload.
type ComplaintDeletedPayload struct {
	Category domain.ComplaintCategory `json:"category"`
	Status   domain.ComplaintStatus   `json:"status"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID         int64                 `json:"user_id"`
	Specialization domain.Specialization `json:"specialization"`
}
