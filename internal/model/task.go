// internal/model/task.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// Priority values are free strings. Only these two carry special ordering;
// anything else (legacy imports included) ranks between them and is shown
// as-is.
const (
	PriorityUrgent  = "Urgent"
	PriorityRegular = "Regular"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:text;not null;default:'not_started'" json:"status"`
	Priority    *string    `gorm:"type:text" json:"priority"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	// LastAction mirrors the body of the most recent update so listings
	// don't have to join for it.
	LastAction string    `gorm:"type:text" json:"last_action"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Divisions []Division   `gorm:"many2many:task_divisions" json:"divisions"`
	Assignees []User       `gorm:"many2many:task_assignees" json:"assignees"`
	Updates   []TaskUpdate `gorm:"foreignKey:TaskID" json:"updates,omitempty"`
}

// LatestUpdate returns the most recent progress note, assuming Updates was
// loaded newest-first.
func (t *Task) LatestUpdate() *TaskUpdate {
	if len(t.Updates) == 0 {
		return nil
	}
	return &t.Updates[0]
}

// PriorityRank mirrors the ORDER BY used for listings: Urgent first,
// Regular last among named priorities, unmapped non-null values between
// them, no priority after everything.
func PriorityRank(p *string) int {
	switch {
	case p == nil:
		return 3
	case *p == PriorityUrgent:
		return 0
	case *p == PriorityRegular:
		return 2
	}
	return 1
}

type TaskUpdate struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TaskID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"task_id"`
	AuthorID  *uuid.UUID `gorm:"type:uuid" json:"author_id"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
