// internal/model/activity.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ActivityAction string

const (
	ActionCreated ActivityAction = "created"
	ActionUpdated ActivityAction = "updated"
	ActionDeleted ActivityAction = "deleted"
)

// ChangeSet is a structured before/after diff stored as jsonb.
type ChangeSet map[string]any

// Scan implements the sql.Scanner interface
func (c *ChangeSet) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, c)
	}

	return json.Unmarshal(raw, c)
}

// Value implements the driver.Valuer interface
func (c ChangeSet) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

type Activity struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Action      ActivityAction `gorm:"type:text;not null" json:"action"`
	SubjectType string         `gorm:"type:text;not null" json:"subject_type"`
	SubjectID   *uuid.UUID     `gorm:"type:uuid" json:"subject_id"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Changes     ChangeSet      `gorm:"type:jsonb" json:"changes,omitempty"`
	ActorID     *uuid.UUID     `gorm:"type:uuid" json:"actor_id"`
	CreatedAt   time.Time      `json:"created_at"`

	Actor *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}
