// internal/model/division.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Division struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	// Color is a 6-hex-digit code without the leading '#'.
	Color     string    `gorm:"type:text;not null;default:'6b7280'" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
