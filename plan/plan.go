package plan

import (
	"time"

	"github.com/google/uuid"
)

// Status is a plan's lifecycle stage.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusDraft, StatusPending, StatusInProgress, StatusDone}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Plan is a personal development plan as returned by the API.
type Plan struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	UserID     string    `json:"user_id,omitempty"`
	Activated  bool      `json:"activated"`
	Status     Status    `json:"status"`
	RawContent *string   `json:"content,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Content decodes the plan's content.
func (p Plan) Content() (Content, error) {
	if p.RawContent == nil {
		return Content{}, nil
	}
	return DecodeContent(*p.RawContent)
}
