package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Canonical complaint statuses. Legacy values that drifted into older clients
// (Assigned, Completed, Rejected) are migration debt and must not reappear.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

var Categories = []string{
	"Roads & Infrastructure",
	"Water Supply",
	"Electricity",
	"Sanitation",
	"Public Transport",
	"Healthcare",
	"Education",
	"Environment",
	"Safety & Security",
	"Other",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// PendingStatusUpdate is the field-worker request held for admin approval.
// RequestedAt == nil means no request is outstanding, which keeps the
// at-most-one invariant a single nullable column check.
type PendingStatusUpdate struct {
	NewStatus     string     `json:"new_status,omitempty"`
	RequestedByID *uuid.UUID `gorm:"type:uuid" json:"requested_by,omitempty"`
	RequestedAt   *time.Time `json:"requested_at,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
}

type Complaint struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"not null;index" json:"category"`
	Priority    string    `gorm:"not null;default:Medium" json:"priority"`
	Location    string    `gorm:"not null" json:"location"`

	// Routing fields inherited from the creator's profile.
	City     string `json:"city"`
	District string `json:"district"`
	Pincode  string `json:"pincode"`

	Status    string `gorm:"not null;default:Pending;index" json:"status"`
	AdminNote string `json:"admin_note,omitempty"`

	AssignedToID *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	AssignedByID *uuid.UUID `gorm:"type:uuid" json:"assigned_by,omitempty"`
	AssignedAt   *time.Time `json:"assigned_at,omitempty"`

	WorkStartedAt   *time.Time `json:"work_started_at,omitempty"`
	WorkCompletedAt *time.Time `json:"work_completed_at,omitempty"`

	Likes         pq.StringArray `gorm:"type:text[]" json:"likes,omitempty"`
	FeedbackCount int            `gorm:"default:0" json:"feedback_count"`

	Pending PendingStatusUpdate `gorm:"embedded;embeddedPrefix:pending_" json:"pending_status_update,omitempty"`

	History []StatusHistoryEntry `gorm:"foreignKey:ComplaintID" json:"status_history,omitempty"`
}

func (c *Complaint) HasPendingUpdate() bool {
	return c.Pending.RequestedAt != nil
}

func (c *Complaint) LikesCount() int {
	return len(c.Likes)
}

// ToggleLike adds or removes userID from the like list and reports whether
// the complaint is now liked by that user.
func (c *Complaint) ToggleLike(userID string) bool {
	for i, id := range c.Likes {
		if id == userID {
			c.Likes = append(c.Likes[:i], c.Likes[i+1:]...)
			return false
		}
	}
	c.Likes = append(c.Likes, userID)
	return true
}

// StatusHistoryEntry is the append-only audit log of status transitions.
type StatusHistoryEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Status      string    `gorm:"not null" json:"status"`
	UpdatedByID uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (e *StatusHistoryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
