package services

import (
	"context"

	"github.com/google/uuid"

	"fixitfast/internal/models/db_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/repositories"
)

const recentComplaintsLimit = 5

type DashboardServiceInterface interface {
	UserDashboard(ctx context.Context, userID uuid.UUID) (*response_models.UserDashboard, error)
	AdminDashboard(ctx context.Context) (*response_models.AdminDashboard, error)
}

type dashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardServiceInterface {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

// Every number is aggregated from the store on each call; there is no cached
// snapshot to drift from reality.
func (s *dashboardService) UserDashboard(ctx context.Context, userID uuid.UUID) (*response_models.UserDashboard, error) {
	statusRows, err := s.dashboardRepo.StatusCountsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoryRows, err := s.dashboardRepo.CategoryCountsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	priorityRows, err := s.dashboardRepo.PriorityCountsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.dashboardRepo.RecentComplaintsForUser(ctx, userID, recentComplaintsLimit)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]int64, len(categoryRows))
	for _, row := range categoryRows {
		categories[row.Category] = row.Count
	}
	priorities := make(map[string]int64, len(priorityRows))
	for _, row := range priorityRows {
		priorities[row.Priority] = row.Count
	}

	return &response_models.UserDashboard{
		Complaints:        foldStatusCounts(statusRows),
		CategoryBreakdown: categories,
		PriorityBreakdown: priorities,
		Recent:            recent,
	}, nil
}

func (s *dashboardService) AdminDashboard(ctx context.Context) (*response_models.AdminDashboard, error) {
	statusRows, err := s.dashboardRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	pendingUpdates, err := s.dashboardRepo.CountPendingUpdates(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.dashboardRepo.CountAccountsByRole(ctx, db_models.RoleUser)
	if err != nil {
		return nil, err
	}
	totalLabours, err := s.dashboardRepo.CountAccountsByRole(ctx, db_models.RoleLabour)
	if err != nil {
		return nil, err
	}
	activeLabours, err := s.dashboardRepo.CountActiveLabours(ctx)
	if err != nil {
		return nil, err
	}
	topCategoryRows, err := s.dashboardRepo.TopCategories(ctx, recentComplaintsLimit)
	if err != nil {
		return nil, err
	}
	recent, err := s.dashboardRepo.RecentComplaints(ctx, recentComplaintsLimit)
	if err != nil {
		return nil, err
	}

	topCategories := make([]response_models.CategoryCount, 0, len(topCategoryRows))
	for _, row := range topCategoryRows {
		topCategories = append(topCategories, response_models.CategoryCount{
			Category: row.Category,
			Count:    row.Count,
		})
	}

	return &response_models.AdminDashboard{
		Complaints:     foldStatusCounts(statusRows),
		PendingUpdates: pendingUpdates,
		TotalUsers:     totalUsers,
		TotalLabours:   totalLabours,
		ActiveLabours:  activeLabours,
		TopCategories:  topCategories,
		Recent:         recent,
	}, nil
}

// foldStatusCounts derives Total as the sum of the per-status buckets, so
// the identity total == pending + in_progress + resolved holds even against
// a concurrently changing table.
func foldStatusCounts(rows []repositories.StatusCountRow) response_models.StatusCounts {
	var counts response_models.StatusCounts
	for _, row := range rows {
		switch row.Status {
		case db_models.StatusPending:
			counts.Pending = row.Count
		case db_models.StatusInProgress:
			counts.InProgress = row.Count
		case db_models.StatusResolved:
			counts.Resolved = row.Count
		}
	}
	counts.Total = counts.Pending + counts.InProgress + counts.Resolved
	return counts
}
