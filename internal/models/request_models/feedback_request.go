package request_models

type SubmitFeedbackRequest struct {
	ComplaintID string `json:"complaint_id" binding:"required,uuid"`

	Satisfaction   string `json:"satisfaction" binding:"required"`
	ResolutionMet  string `json:"resolution_met" binding:"required"`
	Timeliness     string `json:"timeliness" binding:"required"`
	Communication  string `json:"communication" binding:"required"`
	Updates        string `json:"updates"`
	EaseOfUse      string `json:"ease_of_use" binding:"required"`
	Recommendation string `json:"recommendation" binding:"required"`

	LikedMost   string `json:"liked_most" binding:"omitempty,max=500"`
	Improvement string `json:"improvement" binding:"omitempty,max=500"`
	Suggestion  string `json:"suggestion" binding:"omitempty,max=500"`
}

type ModerateFeedbackRequest struct {
	Visible *bool  `json:"visible" binding:"required"`
	Note    string `json:"note" binding:"omitempty,max=200"`
}
