package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadershipShift represents a time-boxed period during which one leader
// holds operational authority over performances and rehearsals.
//
// Invariant: at most one shift has status ACTIVE at any time. The [start,end]
// interval is authoritative for the natural state; Status is a cached
// projection refreshed by the shift service before it is trusted.
type LeadershipShift struct {
	BaseModel
	Name            string      `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	StartDate       time.Time   `json:"start_date" gorm:"not null;index" validate:"required"`
	EndDate         time.Time   `json:"end_date" gorm:"not null" validate:"required"`
	LeaderID        uuid.UUID   `json:"leader_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status          ShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'UPCOMING';index"`
	EventsScheduled int         `json:"events_scheduled" gorm:"default:0"`
	EventsCompleted int         `json:"events_completed" gorm:"default:0"`
	Notes           string      `json:"notes" gorm:"type:text"`
	CreatedByID     uuid.UUID   `json:"created_by_id" gorm:"type:uuid;not null"`

	// Relationships
	Leader ChoirMember `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
}

// TableName returns the table name for LeadershipShift
func (LeadershipShift) TableName() string {
	return "leadership_shifts"
}

// Covers reports whether the given instant falls within the shift's interval.
func (s *LeadershipShift) Covers(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}
