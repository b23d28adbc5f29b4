package types

import (
	"database/sql/driver"
	"time"
)

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message.
type Message struct {
	Role      Role      `json:"role" example:"user" enums:"user,assistant"`                  // Author of the message
	Content   string    `json:"content" example:"How can I improve my health score?"`        // Text of the message
	Timestamp time.Time `json:"timestamp" example:"2024-03-01T10:15:00Z" format:"date-time"` // Time the message was written
}

// Messages is the ordered message log of a chat session, stored as JSON.
type Messages []Message

// Last returns the last n messages.
func (m Messages) Last(n int) Messages {
	if len(m) <= n {
		return m
	}

	return m[len(m)-n:]
}

// Scan writes the value from the database.
func (m *Messages) Scan(value any) error {
	return scanJSON(value, m)
}

// Value returns the value for the SQL driver to write to the database.
func (m Messages) Value() (driver.Value, error) {
	if m == nil {
		return valueJSON([]Message{})
	}

	return valueJSON([]Message(m))
}

// GormDataType defines the data type used by gorm for the type.
func (Messages) GormDataType() string {
	return "text"
}
