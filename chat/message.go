package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Status is the processing state of a message.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// TimestampLayout is the layout the API formats created_at with.
const TimestampLayout = "2006-01-02 15:04:05"

// Message is one chat message.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt Timestamp `json:"created_at"`
}

// Timestamp accepts TimestampLayout and RFC 3339.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(TimestampLayout) + `"`), nil
}
