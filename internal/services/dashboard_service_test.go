package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fixitfast/internal/models/db_models"
	"fixitfast/internal/repositories"
)

func TestUserDashboard_CountsAddUp(t *testing.T) {
	dashboardRepo := new(MockDashboardRepository)
	svc := NewDashboardService(dashboardRepo)
	userID := uuid.New()

	dashboardRepo.On("StatusCountsForUser", mock.Anything, userID).Return([]repositories.StatusCountRow{
		{Status: db_models.StatusPending, Count: 3},
		{Status: db_models.StatusInProgress, Count: 2},
		{Status: db_models.StatusResolved, Count: 5},
	}, nil)
	dashboardRepo.On("CategoryCountsForUser", mock.Anything, userID).Return([]repositories.CategoryCountRow{
		{Category: "Electricity", Count: 6},
		{Category: "Water Supply", Count: 4},
	}, nil)
	dashboardRepo.On("PriorityCountsForUser", mock.Anything, userID).Return([]repositories.PriorityCountRow{
		{Priority: db_models.PriorityHigh, Count: 10},
	}, nil)
	dashboardRepo.On("RecentComplaintsForUser", mock.Anything, userID, 5).
		Return([]db_models.Complaint{}, nil)

	dashboard, err := svc.UserDashboard(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, int64(10), dashboard.Complaints.Total)
	assert.Equal(t, dashboard.Complaints.Total,
		dashboard.Complaints.Pending+dashboard.Complaints.InProgress+dashboard.Complaints.Resolved)
	assert.Equal(t, int64(6), dashboard.CategoryBreakdown["Electricity"])
	assert.Equal(t, int64(10), dashboard.PriorityBreakdown[db_models.PriorityHigh])
}

func TestUserDashboard_EmptyStateIsZeroes(t *testing.T) {
	dashboardRepo := new(MockDashboardRepository)
	svc := NewDashboardService(dashboardRepo)
	userID := uuid.New()

	dashboardRepo.On("StatusCountsForUser", mock.Anything, userID).Return([]repositories.StatusCountRow{}, nil)
	dashboardRepo.On("CategoryCountsForUser", mock.Anything, userID).Return([]repositories.CategoryCountRow{}, nil)
	dashboardRepo.On("PriorityCountsForUser", mock.Anything, userID).Return([]repositories.PriorityCountRow{}, nil)
	dashboardRepo.On("RecentComplaintsForUser", mock.Anything, userID, 5).Return([]db_models.Complaint{}, nil)

	dashboard, err := svc.UserDashboard(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), dashboard.Complaints.Total)
	assert.Empty(t, dashboard.Recent)
}

func TestAdminDashboard_AssemblesAllSections(t *testing.T) {
	dashboardRepo := new(MockDashboardRepository)
	svc := NewDashboardService(dashboardRepo)

	dashboardRepo.On("StatusCounts", mock.Anything).Return([]repositories.StatusCountRow{
		{Status: db_models.StatusPending, Count: 7},
		{Status: db_models.StatusResolved, Count: 13},
	}, nil)
	dashboardRepo.On("CountPendingUpdates", mock.Anything).Return(int64(4), nil)
	dashboardRepo.On("CountAccountsByRole", mock.Anything, db_models.RoleUser).Return(int64(120), nil)
	dashboardRepo.On("CountAccountsByRole", mock.Anything, db_models.RoleLabour).Return(int64(15), nil)
	dashboardRepo.On("CountActiveLabours", mock.Anything).Return(int64(12), nil)
	dashboardRepo.On("TopCategories", mock.Anything, 5).Return([]repositories.CategoryCountRow{
		{Category: "Sanitation", Count: 9},
	}, nil)
	dashboardRepo.On("RecentComplaints", mock.Anything, 5).Return([]db_models.Complaint{}, nil)

	dashboard, err := svc.AdminDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(20), dashboard.Complaints.Total)
	assert.Equal(t, int64(4), dashboard.PendingUpdates)
	assert.Equal(t, int64(120), dashboard.TotalUsers)
	assert.Equal(t, int64(15), dashboard.TotalLabours)
	assert.Equal(t, int64(12), dashboard.ActiveLabours)
	require.Len(t, dashboard.TopCategories, 1)
	assert.Equal(t, "Sanitation", dashboard.TopCategories[0].Category)
}
