package request_models

type CreateComplaintRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"required,min=10,max=1000"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
	Location    string `json:"location" binding:"required,min=3,max=200"`
}

// UpdateComplaintRequest edits an owned, still-Pending complaint. Empty
// fields are left unchanged.
type UpdateComplaintRequest struct {
	Title       string `json:"title" binding:"omitempty,min=3,max=100"`
	Description string `json:"description" binding:"omitempty,min=10,max=1000"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Location    string `json:"location" binding:"omitempty,min=3,max=200"`
}

type RequestStatusUpdateRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks" binding:"omitempty,max=1000"`
}

type ApproveStatusRequest struct {
	Approve   *bool  `json:"approve" binding:"required"`
	AdminNote string `json:"admin_note" binding:"omitempty,max=500"`
}

type DirectStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	AdminNote string `json:"admin_note" binding:"omitempty,max=500"`
}

type AssignComplaintRequest struct {
	LabourID string `json:"labour_id" binding:"required,uuid"`
}

type ComplaintListQuery struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Priority string `form:"priority"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}
