package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance entry types recorded by field workers. check_in, on_duty and
// overtime count as "on duty" for the live status view.
const (
	AttendanceCheckIn  = "check_in"
	AttendanceCheckOut = "check_out"
	AttendanceBreak    = "break"
	AttendanceOnDuty   = "on_duty"
	AttendanceOvertime = "overtime"
	AttendanceLeave    = "leave"
)

func ValidAttendanceType(t string) bool {
	switch t {
	case AttendanceCheckIn, AttendanceCheckOut, AttendanceBreak,
		AttendanceOnDuty, AttendanceOvertime, AttendanceLeave:
		return true
	}
	return false
}

// AttendanceEntry is an append-only log row. Corrections are new rows
// recorded by an admin, never edits of existing ones.
type AttendanceEntry struct {
	BaseModel
	LabourID   uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_labour_time,priority:1" json:"labour_id"`
	Type       string    `gorm:"not null;index" json:"type"`
	OccurredAt time.Time `gorm:"not null;index:idx_attendance_labour_time,priority:2,sort:desc" json:"occurred_at"`

	Location string `json:"location,omitempty"`
	Remarks  string `json:"remarks,omitempty"`

	RecordedByID   uuid.UUID  `gorm:"type:uuid;not null" json:"recorded_by"`
	CorrectedByID  *uuid.UUID `gorm:"type:uuid" json:"corrected_by,omitempty"`
	CorrectionNote string     `json:"correction_note,omitempty"`
}

// OnDuty reports whether this entry, as the latest one for a labour, means
// the labour is currently working.
func (e *AttendanceEntry) OnDuty() bool {
	switch e.Type {
	case AttendanceCheckIn, AttendanceOnDuty, AttendanceOvertime:
		return true
	}
	return false
}
