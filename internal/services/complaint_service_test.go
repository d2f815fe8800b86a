package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fixitfast/internal/models/db_models"
	"fixitfast/internal/models/request_models"
	"fixitfast/pkg/utils"
)

func newComplaintServiceForTest() (*complaintService, *MockComplaintRepository, *MockAccountRepository, *MockMailService) {
	complaintRepo := new(MockComplaintRepository)
	accountRepo := new(MockAccountRepository)
	mailService := new(MockMailService)
	svc := NewComplaintService(complaintRepo, accountRepo, mailService).(*complaintService)
	return svc, complaintRepo, accountRepo, mailService
}

func TestCreateComplaint_InheritsProfileLocation(t *testing.T) {
	svc, complaintRepo, accountRepo, _ := newComplaintServiceForTest()
	userID := uuid.New()

	accountRepo.On("FindByID", mock.Anything, userID).Return(&db_models.Account{
		BaseModel: db_models.BaseModel{ID: userID},
		Role:      db_models.RoleUser,
		City:      "Pune",
		District:  "Haveli",
		Pincode:   "411001",
	}, nil)

	var stored *db_models.Complaint
	complaintRepo.On("Insert", mock.Anything, mock.AnythingOfType("*db_models.Complaint"), "Complaint registered").
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*db_models.Complaint)
			stored.ID = uuid.New()
		}).Return(nil)
	complaintRepo.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&db_models.Complaint{}, nil)

	_, err := svc.CreateComplaint(context.Background(), userID, request_models.CreateComplaintRequest{
		Title:       "Streetlight out",
		Description: "The streetlight near the park has been dark for a week",
		Category:    "Electricity",
		Location:    "Main road, near central park",
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, "Pune", stored.City)
	assert.Equal(t, "Haveli", stored.District)
	assert.Equal(t, "411001", stored.Pincode)
	assert.Equal(t, db_models.PriorityMedium, stored.Priority)
	assert.Equal(t, db_models.StatusPending, stored.Status)
}

func TestCreateComplaint_RejectsUnknownCategory(t *testing.T) {
	svc, _, _, _ := newComplaintServiceForTest()

	_, err := svc.CreateComplaint(context.Background(), uuid.New(), request_models.CreateComplaintRequest{
		Title:       "Streetlight out",
		Description: "The streetlight near the park has been dark for a week",
		Category:    "Potholes",
		Location:    "Main road",
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestRequestStatusChange_Success(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	labourID := uuid.New()

	complaintRepo.On("AttachPendingUpdate", mock.Anything, complaintID, labourID, db_models.StatusResolved, "fixed the pipe").
		Return(true, nil)
	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel: db_models.BaseModel{ID: complaintID},
		Status:    db_models.StatusInProgress,
	}, nil)

	complaint, err := svc.RequestStatusChange(context.Background(), labourID, complaintID, db_models.StatusResolved, "fixed the pipe")
	require.NoError(t, err)
	assert.Equal(t, complaintID, complaint.ID)
	complaintRepo.AssertExpectations(t)
}

func TestRequestStatusChange_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newComplaintServiceForTest()

	_, err := svc.RequestStatusChange(context.Background(), uuid.New(), uuid.New(), "Completed", "")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestRequestStatusChange_SecondRequestConflicts(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	labourID := uuid.New()
	requestedAt := time.Now()

	complaintRepo.On("AttachPendingUpdate", mock.Anything, complaintID, labourID, db_models.StatusResolved, "").
		Return(false, nil)
	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel:    db_models.BaseModel{ID: complaintID},
		Status:       db_models.StatusInProgress,
		AssignedToID: &labourID,
		Pending: db_models.PendingStatusUpdate{
			NewStatus:   db_models.StatusResolved,
			RequestedAt: &requestedAt,
		},
	}, nil)

	_, err := svc.RequestStatusChange(context.Background(), labourID, complaintID, db_models.StatusResolved, "")
	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestRequestStatusChange_NotAssigneeForbidden(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	labourID := uuid.New()
	otherLabour := uuid.New()

	complaintRepo.On("AttachPendingUpdate", mock.Anything, complaintID, labourID, db_models.StatusInProgress, "").
		Return(false, nil)
	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel:    db_models.BaseModel{ID: complaintID},
		Status:       db_models.StatusInProgress,
		AssignedToID: &otherLabour,
	}, nil)

	_, err := svc.RequestStatusChange(context.Background(), labourID, complaintID, db_models.StatusInProgress, "")
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestRequestStatusChange_ResolvedConflicts(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	labourID := uuid.New()

	complaintRepo.On("AttachPendingUpdate", mock.Anything, complaintID, labourID, db_models.StatusInProgress, "").
		Return(false, nil)
	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel:    db_models.BaseModel{ID: complaintID},
		Status:       db_models.StatusResolved,
		AssignedToID: &labourID,
	}, nil)

	_, err := svc.RequestStatusChange(context.Background(), labourID, complaintID, db_models.StatusInProgress, "")
	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestRequestStatusChange_MissingComplaint(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	labourID := uuid.New()

	complaintRepo.On("AttachPendingUpdate", mock.Anything, complaintID, labourID, db_models.StatusInProgress, "").
		Return(false, nil)
	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(nil, nil)

	_, err := svc.RequestStatusChange(context.Background(), labourID, complaintID, db_models.StatusInProgress, "")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestResolvePendingRequest_ApproveNotifiesOwner(t *testing.T) {
	svc, complaintRepo, accountRepo, mailService := newComplaintServiceForTest()
	complaintID := uuid.New()
	adminID := uuid.New()
	ownerID := uuid.New()

	resolved := &db_models.Complaint{
		BaseModel: db_models.BaseModel{ID: complaintID},
		UserID:    ownerID,
		Title:     "Streetlight out",
		Status:    db_models.StatusResolved,
	}
	complaintRepo.On("ApprovePendingUpdate", mock.Anything, complaintID, adminID, "verified on site").
		Return(resolved, nil)
	accountRepo.On("FindByID", mock.Anything, ownerID).Return(&db_models.Account{
		BaseModel: db_models.BaseModel{ID: ownerID},
		Email:     "owner@example.com",
	}, nil)
	mailService.On("SendStatusUpdateNotice", "owner@example.com", "Streetlight out", db_models.StatusResolved, "verified on site").
		Return(nil)

	complaint, err := svc.ResolvePendingRequest(context.Background(), adminID, complaintID, true, "verified on site")
	require.NoError(t, err)
	assert.Equal(t, db_models.StatusResolved, complaint.Status)
	mailService.AssertExpectations(t)
}

func TestResolvePendingRequest_RejectKeepsStatusAndSkipsMail(t *testing.T) {
	svc, complaintRepo, _, mailService := newComplaintServiceForTest()
	complaintID := uuid.New()
	adminID := uuid.New()

	complaintRepo.On("RejectPendingUpdate", mock.Anything, complaintID, adminID, "not done yet").
		Return(&db_models.Complaint{
			BaseModel: db_models.BaseModel{ID: complaintID},
			Status:    db_models.StatusInProgress,
		}, nil)

	complaint, err := svc.ResolvePendingRequest(context.Background(), adminID, complaintID, false, "not done yet")
	require.NoError(t, err)
	assert.Equal(t, db_models.StatusInProgress, complaint.Status)
	mailService.AssertNotCalled(t, "SendStatusUpdateNotice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolvePendingRequest_NoPendingRequest(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	adminID := uuid.New()

	complaintRepo.On("ApprovePendingUpdate", mock.Anything, complaintID, adminID, "").
		Return(nil, utils.ErrNotFound)

	_, err := svc.ResolvePendingRequest(context.Background(), adminID, complaintID, true, "")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestResolvePendingRequest_StaleRequestOnResolvedConflicts(t *testing.T) {
	svc, complaintRepo, _, mailService := newComplaintServiceForTest()
	complaintID := uuid.New()
	adminID := uuid.New()

	complaintRepo.On("ApprovePendingUpdate", mock.Anything, complaintID, adminID, "").
		Return(nil, fmt.Errorf("%w: complaint is already resolved", utils.ErrConflict))

	_, err := svc.ResolvePendingRequest(context.Background(), adminID, complaintID, true, "")
	assert.ErrorIs(t, err, utils.ErrConflict)
	mailService.AssertNotCalled(t, "SendStatusUpdateNotice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatusDirect_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newComplaintServiceForTest()

	_, err := svc.SetStatusDirect(context.Background(), uuid.New(), uuid.New(), "Assigned", "")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestDeleteComplaint_OwnerPending(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	userID := uuid.New()

	complaintRepo.On("DeleteOwnedPending", mock.Anything, complaintID, userID).Return(true, nil)

	err := svc.DeleteComplaint(context.Background(), userID, db_models.RoleUser, complaintID)
	assert.NoError(t, err)
}

func TestDeleteComplaint_NotOwnerForbidden(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	userID := uuid.New()

	complaintRepo.On("DeleteOwnedPending", mock.Anything, complaintID, userID).Return(false, nil)
	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel: db_models.BaseModel{ID: complaintID},
		UserID:    uuid.New(),
		Status:    db_models.StatusPending,
	}, nil)

	err := svc.DeleteComplaint(context.Background(), userID, db_models.RoleUser, complaintID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestDeleteComplaint_OwnerButInProgressForbidden(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	userID := uuid.New()

	complaintRepo.On("DeleteOwnedPending", mock.Anything, complaintID, userID).Return(false, nil)
	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel: db_models.BaseModel{ID: complaintID},
		UserID:    userID,
		Status:    db_models.StatusInProgress,
	}, nil)

	err := svc.DeleteComplaint(context.Background(), userID, db_models.RoleUser, complaintID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestDeleteComplaint_AdminBypassesOwnership(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()

	complaintRepo.On("Delete", mock.Anything, complaintID).Return(true, nil)

	err := svc.DeleteComplaint(context.Background(), uuid.New(), db_models.RoleAdmin, complaintID)
	assert.NoError(t, err)
	complaintRepo.AssertNotCalled(t, "DeleteOwnedPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateComplaint_NothingToUpdate(t *testing.T) {
	svc, _, _, _ := newComplaintServiceForTest()

	_, err := svc.UpdateComplaint(context.Background(), uuid.New(), uuid.New(), request_models.UpdateComplaintRequest{})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestAssign_RequiresActiveLabour(t *testing.T) {
	svc, _, accountRepo, _ := newComplaintServiceForTest()
	labourID := uuid.New()

	accountRepo.On("FindByID", mock.Anything, labourID).Return(&db_models.Account{
		BaseModel: db_models.BaseModel{ID: labourID},
		Role:      db_models.RoleLabour,
		Active:    false,
	}, nil)

	_, err := svc.Assign(context.Background(), uuid.New(), uuid.New(), labourID)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestAssign_RejectsNonLabourTarget(t *testing.T) {
	svc, _, accountRepo, _ := newComplaintServiceForTest()
	targetID := uuid.New()

	accountRepo.On("FindByID", mock.Anything, targetID).Return(&db_models.Account{
		BaseModel: db_models.BaseModel{ID: targetID},
		Role:      db_models.RoleUser,
		Active:    true,
	}, nil)

	_, err := svc.Assign(context.Background(), uuid.New(), uuid.New(), targetID)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestAssign_ResolvedComplaintConflicts(t *testing.T) {
	svc, complaintRepo, accountRepo, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	labourID := uuid.New()
	adminID := uuid.New()

	accountRepo.On("FindByID", mock.Anything, labourID).Return(&db_models.Account{
		BaseModel: db_models.BaseModel{ID: labourID},
		Role:      db_models.RoleLabour,
		Active:    true,
	}, nil)
	complaintRepo.On("Assign", mock.Anything, complaintID, labourID, adminID).Return(false, nil)
	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel: db_models.BaseModel{ID: complaintID},
		Status:    db_models.StatusResolved,
	}, nil)

	_, err := svc.Assign(context.Background(), adminID, complaintID, labourID)
	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestGetComplaint_StrangerSeesNotFound(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()

	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel: db_models.BaseModel{ID: complaintID},
		UserID:    uuid.New(),
	}, nil)

	_, err := svc.GetComplaint(context.Background(), uuid.New(), db_models.RoleUser, complaintID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetComplaint_AssigneeCanView(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	labourID := uuid.New()

	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel:    db_models.BaseModel{ID: complaintID},
		UserID:       uuid.New(),
		AssignedToID: &labourID,
	}, nil)

	complaint, err := svc.GetComplaint(context.Background(), labourID, db_models.RoleLabour, complaintID)
	require.NoError(t, err)
	assert.Equal(t, complaintID, complaint.ID)
}

func TestToggleLike(t *testing.T) {
	svc, complaintRepo, _, _ := newComplaintServiceForTest()
	complaintID := uuid.New()
	userID := uuid.New()

	complaintRepo.On("FindByID", mock.Anything, complaintID).Return(&db_models.Complaint{
		BaseModel: db_models.BaseModel{ID: complaintID},
	}, nil)
	complaintRepo.On("SaveLikes", mock.Anything, complaintID, mock.Anything).Return(nil)

	complaint, liked, err := svc.ToggleLike(context.Background(), userID, complaintID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, complaint.LikesCount())
}
