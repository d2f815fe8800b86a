package request_models

type RecordAttendanceRequest struct {
	Type     string `json:"type" binding:"required"`
	Location string `json:"location" binding:"omitempty,max=200"`
	Remarks  string `json:"remarks" binding:"omitempty,max=500"`
}

// CorrectAttendanceRequest is the admin-recorded variant. OccurredAt is
// RFC3339; empty means "now".
type CorrectAttendanceRequest struct {
	Type       string `json:"type" binding:"required"`
	OccurredAt string `json:"occurred_at" binding:"omitempty"`
	Location   string `json:"location" binding:"omitempty,max=200"`
	Remarks    string `json:"remarks" binding:"omitempty,max=500"`
	Note       string `json:"note" binding:"required,max=500"`
}

type AttendanceListQuery struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=10"`
}

type AttendanceSummaryQuery struct {
	Month int `form:"month"`
	Year  int `form:"year"`
}
