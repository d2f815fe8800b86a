package response_models

import (
	"time"

	dbm "fixitfast/internal/models/db_models"
)

type AttendanceList struct {
	Entries    []dbm.AttendanceEntry `json:"entries"`
	Pagination Pagination            `json:"pagination"`
}

// AttendanceStatus is derived from the latest log entry. Status is empty
// when the labour has never recorded anything.
type AttendanceStatus struct {
	Status     string     `json:"status,omitempty"`
	OnDuty     bool       `json:"on_duty"`
	LastAction *time.Time `json:"last_action,omitempty"`
	Location   string     `json:"location,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`
}

type AttendanceSummary struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	WorkingDays    int     `json:"working_days"`
	PresentDays    int     `json:"present_days"`
	LeaveDays      int     `json:"leave_days"`
	TotalHours     float64 `json:"total_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	AvgHoursPerDay float64 `json:"avg_hours_per_day"`
}
