package db_models

import (
	"github.com/google/uuid"
)

// Allowed answers for each structured rating question.
var (
	SatisfactionLevels   = []string{"Very satisfied", "Satisfied", "Neutral", "Unsatisfied", "Very unsatisfied"}
	ResolutionMetLevels  = []string{"Yes, completely", "Partially", "Not at all"}
	TimelinessLevels     = []string{"Excellent", "Good", "Average", "Poor"}
	CommunicationLevels  = []string{"Yes", "Somewhat", "No"}
	UpdateLevels         = []string{"Always", "Sometimes", "Rarely", "Never"}
	EaseOfUseLevels      = []string{"Very easy", "Easy", "Average", "Difficult", "Very difficult"}
	RecommendationLevels = []string{"Yes", "Maybe", "No"}
)

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

func ValidSatisfaction(v string) bool   { return oneOf(v, SatisfactionLevels) }
func ValidResolutionMet(v string) bool  { return oneOf(v, ResolutionMetLevels) }
func ValidTimeliness(v string) bool     { return oneOf(v, TimelinessLevels) }
func ValidCommunication(v string) bool  { return oneOf(v, CommunicationLevels) }
func ValidUpdates(v string) bool        { return oneOf(v, UpdateLevels) }
func ValidEaseOfUse(v string) bool      { return oneOf(v, EaseOfUseLevels) }
func ValidRecommendation(v string) bool { return oneOf(v, RecommendationLevels) }

// Feedback is submitted once per (user, complaint) after resolution. The
// composite unique index is the backstop for the duplicate pre-check.
type Feedback struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_complaint" json:"user_id"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_complaint;index" json:"complaint_id"`

	Satisfaction   string `gorm:"not null" json:"satisfaction"`
	ResolutionMet  string `gorm:"not null" json:"resolution_met"`
	Timeliness     string `gorm:"not null" json:"timeliness"`
	Communication  string `gorm:"not null" json:"communication"`
	Updates        string `gorm:"not null" json:"updates"`
	EaseOfUse      string `gorm:"not null" json:"ease_of_use"`
	Recommendation string `gorm:"not null" json:"recommendation"`

	LikedMost   string `json:"liked_most,omitempty"`
	Improvement string `json:"improvement,omitempty"`
	Suggestion  string `json:"suggestion,omitempty"`

	IsVisible      bool       `gorm:"default:true" json:"is_visible"`
	IsModerated    bool       `gorm:"default:false" json:"is_moderated"`
	ModeratedByID  *uuid.UUID `gorm:"type:uuid" json:"moderated_by,omitempty"`
	ModerationNote string     `json:"moderation_note,omitempty"`
}

// SatisfactionScore maps the satisfaction answer onto 1..5 for analytics.
func (f *Feedback) SatisfactionScore() int {
	switch f.Satisfaction {
	case "Very satisfied":
		return 5
	case "Satisfied":
		return 4
	case "Neutral":
		return 3
	case "Unsatisfied":
		return 2
	case "Very unsatisfied":
		return 1
	}
	return 0
}
