// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string     `gorm:"type:text;not null" json:"name"`
	Email      string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName  string     `gorm:"type:text" json:"first_name"`
	LastName   string     `gorm:"type:text" json:"last_name"`
	Position   string     `gorm:"type:text" json:"position"`
	Role       Role       `gorm:"type:text;not null;default:'user'" json:"role"`
	DivisionID *uuid.UUID `gorm:"type:uuid" json:"division_id"`
	// ExternalID links this record to the legacy HR system. Unique when
	// present so just-in-time provisioning can never create two locals
	// for one legacy identity.
	ExternalID *int64    `gorm:"uniqueIndex" json:"external_id,omitempty"`
	PINHash    string    `gorm:"type:text" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Division *Division `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
}

// FullName is the display form used in task listings and emails.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Name
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
