package response_models

import (
	dbm "fixitfast/internal/models/db_models"
)

type StatusCounts struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type UserDashboard struct {
	Complaints        StatusCounts     `json:"complaints"`
	CategoryBreakdown map[string]int64 `json:"category_breakdown"`
	PriorityBreakdown map[string]int64 `json:"priority_breakdown"`
	Recent            []dbm.Complaint  `json:"recent_complaints"`
}

type AdminDashboard struct {
	Complaints     StatusCounts    `json:"complaints"`
	PendingUpdates int64           `json:"pending_status_updates"`
	TotalUsers     int64           `json:"total_users"`
	TotalLabours   int64           `json:"total_labours"`
	ActiveLabours  int64           `json:"active_labours"`
	TopCategories  []CategoryCount `json:"top_categories"`
	Recent         []dbm.Complaint `json:"recent_complaints"`
}
