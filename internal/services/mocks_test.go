package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/mock"

	"fixitfast/internal/models/db_models"
	"fixitfast/internal/repositories"
)

// MockAccountRepository is a mock implementation of repositories.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *db_models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (bool, error) {
	args := m.Called(ctx, id, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ListByRole(ctx context.Context, role string, page, limit int) ([]db_models.Account, int64, error) {
	args := m.Called(ctx, role, page, limit)
	var accounts []db_models.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]db_models.Account)
	}
	return accounts, args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockComplaintRepository is a mock implementation of repositories.ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Insert(ctx context.Context, complaint *db_models.Complaint, note string) error {
	args := m.Called(ctx, complaint, note)
	return args.Error(0)
}

func (m *MockComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) List(ctx context.Context, f repositories.ComplaintFilter) ([]db_models.Complaint, int64, error) {
	args := m.Called(ctx, f)
	var complaints []db_models.Complaint
	if args.Get(0) != nil {
		complaints = args.Get(0).([]db_models.Complaint)
	}
	return complaints, args.Get(1).(int64), args.Error(2)
}

func (m *MockComplaintRepository) ListPendingUpdates(ctx context.Context, page, limit int) ([]db_models.Complaint, int64, error) {
	args := m.Called(ctx, page, limit)
	var complaints []db_models.Complaint
	if args.Get(0) != nil {
		complaints = args.Get(0).([]db_models.Complaint)
	}
	return complaints, args.Get(1).(int64), args.Error(2)
}

func (m *MockComplaintRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) (bool, error) {
	args := m.Called(ctx, id, userID, updates)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepository) DeleteOwnedPending(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepository) AttachPendingUpdate(ctx context.Context, id, labourID uuid.UUID, newStatus, remarks string) (bool, error) {
	args := m.Called(ctx, id, labourID, newStatus, remarks)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepository) ApprovePendingUpdate(ctx context.Context, id, adminID uuid.UUID, adminNote string) (*db_models.Complaint, error) {
	args := m.Called(ctx, id, adminID, adminNote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) RejectPendingUpdate(ctx context.Context, id, adminID uuid.UUID, adminNote string) (*db_models.Complaint, error) {
	args := m.Called(ctx, id, adminID, adminNote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) SetStatus(ctx context.Context, id uuid.UUID, newStatus string, adminID uuid.UUID, note string) (*db_models.Complaint, error) {
	args := m.Called(ctx, id, newStatus, adminID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) Assign(ctx context.Context, id, labourID, adminID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, labourID, adminID)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepository) SaveLikes(ctx context.Context, id uuid.UUID, likes pq.StringArray) error {
	args := m.Called(ctx, id, likes)
	return args.Error(0)
}

func (m *MockComplaintRepository) IncFeedbackCount(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockFeedbackRepository is a mock implementation of repositories.FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Insert(ctx context.Context, feedback *db_models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByUserAndComplaint(ctx context.Context, userID, complaintID uuid.UUID) (*db_models.Feedback, error) {
	args := m.Called(ctx, userID, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ListByComplaint(ctx context.Context, complaintID uuid.UUID, visibleOnly bool, page, limit int) ([]db_models.Feedback, int64, error) {
	args := m.Called(ctx, complaintID, visibleOnly, page, limit)
	var items []db_models.Feedback
	if args.Get(0) != nil {
		items = args.Get(0).([]db_models.Feedback)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockFeedbackRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Feedback, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	var items []db_models.Feedback
	if args.Get(0) != nil {
		items = args.Get(0).([]db_models.Feedback)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockFeedbackRepository) ListAll(ctx context.Context, visible *bool, page, limit int) ([]db_models.Feedback, int64, error) {
	args := m.Called(ctx, visible, page, limit)
	var items []db_models.Feedback
	if args.Get(0) != nil {
		items = args.Get(0).([]db_models.Feedback)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockFeedbackRepository) SetModeration(ctx context.Context, id uuid.UUID, visible bool, moderatorID uuid.UUID, note string) (bool, error) {
	args := m.Called(ctx, id, visible, moderatorID, note)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (*db_models.Feedback, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) StatsForComplaint(ctx context.Context, complaintID uuid.UUID) (int64, float64, error) {
	args := m.Called(ctx, complaintID)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

// MockDashboardRepository is a mock implementation of repositories.DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) StatusCountsForUser(ctx context.Context, userID uuid.UUID) ([]repositories.StatusCountRow, error) {
	args := m.Called(ctx, userID)
	var rows []repositories.StatusCountRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]repositories.StatusCountRow)
	}
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) CategoryCountsForUser(ctx context.Context, userID uuid.UUID) ([]repositories.CategoryCountRow, error) {
	args := m.Called(ctx, userID)
	var rows []repositories.CategoryCountRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]repositories.CategoryCountRow)
	}
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) PriorityCountsForUser(ctx context.Context, userID uuid.UUID) ([]repositories.PriorityCountRow, error) {
	args := m.Called(ctx, userID)
	var rows []repositories.PriorityCountRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]repositories.PriorityCountRow)
	}
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) RecentComplaintsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Complaint, error) {
	args := m.Called(ctx, userID, limit)
	var complaints []db_models.Complaint
	if args.Get(0) != nil {
		complaints = args.Get(0).([]db_models.Complaint)
	}
	return complaints, args.Error(1)
}

func (m *MockDashboardRepository) StatusCounts(ctx context.Context) ([]repositories.StatusCountRow, error) {
	args := m.Called(ctx)
	var rows []repositories.StatusCountRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]repositories.StatusCountRow)
	}
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) TopCategories(ctx context.Context, limit int) ([]repositories.CategoryCountRow, error) {
	args := m.Called(ctx, limit)
	var rows []repositories.CategoryCountRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]repositories.CategoryCountRow)
	}
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) CountPendingUpdates(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountAccountsByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountActiveLabours(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) RecentComplaints(ctx context.Context, limit int) ([]db_models.Complaint, error) {
	args := m.Called(ctx, limit)
	var complaints []db_models.Complaint
	if args.Get(0) != nil {
		complaints = args.Get(0).([]db_models.Complaint)
	}
	return complaints, args.Error(1)
}

// MockMailService is a mock implementation of IMailService
type MockMailService struct {
	mock.Mock
}

func (m *MockMailService) SendStatusUpdateNotice(to, complaintTitle, newStatus, note string) error {
	args := m.Called(to, complaintTitle, newStatus, note)
	return args.Error(0)
}

func (m *MockMailService) SendMailToResetPassword(to, token string) error {
	args := m.Called(to, token)
	return args.Error(0)
}

// MockAttendanceRepository is a mock implementation of repositories.AttendanceRepository
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Insert(ctx context.Context, entry *db_models.AttendanceEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAttendanceRepository) LatestForLabour(ctx context.Context, labourID uuid.UUID) (*db_models.AttendanceEntry, error) {
	args := m.Called(ctx, labourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.AttendanceEntry), args.Error(1)
}

func (m *MockAttendanceRepository) ListForLabour(ctx context.Context, labourID uuid.UUID, from, to time.Time, page, limit int) ([]db_models.AttendanceEntry, int64, error) {
	args := m.Called(ctx, labourID, from, to, page, limit)
	var entries []db_models.AttendanceEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]db_models.AttendanceEntry)
	}
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *MockAttendanceRepository) EntriesBetween(ctx context.Context, labourID uuid.UUID, from, to time.Time) ([]db_models.AttendanceEntry, error) {
	args := m.Called(ctx, labourID, from, to)
	var entries []db_models.AttendanceEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]db_models.AttendanceEntry)
	}
	return entries, args.Error(1)
}
