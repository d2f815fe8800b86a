package response_models

import (
	dbm "fixitfast/internal/models/db_models"
)

type LoginResponse struct {
	Token                 string `json:"token,omitempty"`
	Role                  string `json:"role,omitempty"`
	RequirePasswordChange bool   `json:"require_password_change,omitempty"`
}

// AdminSignUpResponse carries the one-time plaintext secret key; only the
// hash is stored, so this is the only moment the key is visible.
type AdminSignUpResponse struct {
	Account   dbm.Account `json:"account"`
	SecretKey string      `json:"secret_key"`
}

type ComplaintList struct {
	Complaints []dbm.Complaint `json:"complaints"`
	Pagination Pagination      `json:"pagination"`
}

type FeedbackList struct {
	Feedback   []dbm.Feedback `json:"feedback"`
	Pagination Pagination     `json:"pagination"`
}

type AccountList struct {
	Accounts   []dbm.Account `json:"accounts"`
	Pagination Pagination    `json:"pagination"`
}

type FeedbackStats struct {
	Total           int64   `json:"total"`
	AvgSatisfaction float64 `json:"avg_satisfaction"`
}
