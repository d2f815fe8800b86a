package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"fixitfast/internal/models/db_models"
	"fixitfast/internal/models/request_models"
	"fixitfast/internal/repositories"
	"fixitfast/pkg/logger"
	"fixitfast/pkg/utils"
)

type ComplaintServiceInterface interface {
	CreateComplaint(ctx context.Context, userID uuid.UUID, req request_models.CreateComplaintRequest) (*db_models.Complaint, error)
	GetComplaint(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) (*db_models.Complaint, error)
	ListMine(ctx context.Context, userID uuid.UUID, q request_models.ComplaintListQuery) ([]db_models.Complaint, int64, error)
	ListAll(ctx context.Context, q request_models.ComplaintListQuery) ([]db_models.Complaint, int64, error)
	ListAssigned(ctx context.Context, labourID uuid.UUID, q request_models.ComplaintListQuery) ([]db_models.Complaint, int64, error)
	ListPendingUpdates(ctx context.Context, page, limit int) ([]db_models.Complaint, int64, error)

	UpdateComplaint(ctx context.Context, userID, id uuid.UUID, req request_models.UpdateComplaintRequest) (*db_models.Complaint, error)
	DeleteComplaint(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) error
	ToggleLike(ctx context.Context, userID, id uuid.UUID) (*db_models.Complaint, bool, error)

	RequestStatusChange(ctx context.Context, labourID, id uuid.UUID, newStatus, remarks string) (*db_models.Complaint, error)
	ResolvePendingRequest(ctx context.Context, adminID, id uuid.UUID, approve bool, adminNote string) (*db_models.Complaint, error)
	SetStatusDirect(ctx context.Context, adminID, id uuid.UUID, newStatus, note string) (*db_models.Complaint, error)
	Assign(ctx context.Context, adminID, id, labourID uuid.UUID) (*db_models.Complaint, error)
}

type complaintService struct {
	complaintRepo repositories.ComplaintRepository
	accountRepo   repositories.AccountRepository
	mailService   IMailService
}

func NewComplaintService(
	complaintRepo repositories.ComplaintRepository,
	accountRepo repositories.AccountRepository,
	mailService IMailService,
) ComplaintServiceInterface {
	return &complaintService{
		complaintRepo: complaintRepo,
		accountRepo:   accountRepo,
		mailService:   mailService,
	}
}

// CreateComplaint files a new complaint. The complaint's routing area (city,
// district, pincode) is copied from the creator's profile at creation time.
func (s *complaintService) CreateComplaint(ctx context.Context, userID uuid.UUID, req request_models.CreateComplaintRequest) (*db_models.Complaint, error) {
	if !db_models.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", utils.ErrValidation, req.Category)
	}
	priority := req.Priority
	if priority == "" {
		priority = db_models.PriorityMedium
	}
	if !db_models.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", utils.ErrValidation, priority)
	}

	user, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: account not found", utils.ErrUnauthorized)
	}

	complaint := &db_models.Complaint{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Priority:    priority,
		Location:    strings.TrimSpace(req.Location),
		City:        user.City,
		District:    user.District,
		Pincode:     user.Pincode,
		Status:      db_models.StatusPending,
	}
	if err := s.complaintRepo.Insert(ctx, complaint, "Complaint registered"); err != nil {
		return nil, err
	}
	return s.complaintRepo.FindByID(ctx, complaint.ID)
}

func (s *complaintService) GetComplaint(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) (*db_models.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
	}
	if !canViewComplaint(complaint, actorID, role) {
		// Reported as not-found so strangers cannot probe complaint ids.
		return nil, fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
	}
	return complaint, nil
}

func canViewComplaint(c *db_models.Complaint, actorID uuid.UUID, role string) bool {
	if db_models.IsAdminRole(role) {
		return true
	}
	if c.UserID == actorID {
		return true
	}
	return c.AssignedToID != nil && *c.AssignedToID == actorID
}

func (s *complaintService) ListMine(ctx context.Context, userID uuid.UUID, q request_models.ComplaintListQuery) ([]db_models.Complaint, int64, error) {
	f, err := filterFromQuery(q)
	if err != nil {
		return nil, 0, err
	}
	f.UserID = &userID
	return s.complaintRepo.List(ctx, f)
}

func (s *complaintService) ListAll(ctx context.Context, q request_models.ComplaintListQuery) ([]db_models.Complaint, int64, error) {
	f, err := filterFromQuery(q)
	if err != nil {
		return nil, 0, err
	}
	return s.complaintRepo.List(ctx, f)
}

func (s *complaintService) ListAssigned(ctx context.Context, labourID uuid.UUID, q request_models.ComplaintListQuery) ([]db_models.Complaint, int64, error) {
	f, err := filterFromQuery(q)
	if err != nil {
		return nil, 0, err
	}
	f.AssignedToID = &labourID
	return s.complaintRepo.List(ctx, f)
}

func (s *complaintService) ListPendingUpdates(ctx context.Context, page, limit int) ([]db_models.Complaint, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.complaintRepo.ListPendingUpdates(ctx, page, limit)
}

func filterFromQuery(q request_models.ComplaintListQuery) (repositories.ComplaintFilter, error) {
	var f repositories.ComplaintFilter
	if q.Status != "" {
		if !db_models.ValidStatus(q.Status) {
			return f, fmt.Errorf("%w: unknown status %q", utils.ErrValidation, q.Status)
		}
		f.Status = q.Status
	}
	if q.Category != "" {
		if !db_models.ValidCategory(q.Category) {
			return f, fmt.Errorf("%w: unknown category %q", utils.ErrValidation, q.Category)
		}
		f.Category = q.Category
	}
	if q.Priority != "" {
		if !db_models.ValidPriority(q.Priority) {
			return f, fmt.Errorf("%w: unknown priority %q", utils.ErrValidation, q.Priority)
		}
		f.Priority = q.Priority
	}
	f.Page, f.Limit = normalizePage(q.Page, q.Limit)
	return f, nil
}

// UpdateComplaint edits an owned complaint while it is still Pending. Once a
// worker picks it up, citizens can no longer change it.
func (s *complaintService) UpdateComplaint(ctx context.Context, userID, id uuid.UUID, req request_models.UpdateComplaintRequest) (*db_models.Complaint, error) {
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		updates["description"] = strings.TrimSpace(req.Description)
	}
	if req.Category != "" {
		if !db_models.ValidCategory(req.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", utils.ErrValidation, req.Category)
		}
		updates["category"] = req.Category
	}
	if req.Priority != "" {
		if !db_models.ValidPriority(req.Priority) {
			return nil, fmt.Errorf("%w: unknown priority %q", utils.ErrValidation, req.Priority)
		}
		updates["priority"] = req.Priority
	}
	if req.Location != "" {
		updates["location"] = strings.TrimSpace(req.Location)
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", utils.ErrValidation)
	}

	ok, err := s.complaintRepo.UpdateOwned(ctx, id, userID, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.explainOwnedFailure(ctx, id, userID, "only pending complaints can be edited")
	}
	return s.complaintRepo.FindByID(ctx, id)
}

func (s *complaintService) DeleteComplaint(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) error {
	if db_models.IsAdminRole(role) {
		ok, err := s.complaintRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
		}
		return nil
	}

	ok, err := s.complaintRepo.DeleteOwnedPending(ctx, id, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return s.explainOwnedFailure(ctx, id, actorID, "only pending complaints can be deleted")
	}
	return nil
}

// explainOwnedFailure turns a missed owner-scoped conditional write into the
// precise error: missing, not yours, or no longer Pending.
func (s *complaintService) explainOwnedFailure(ctx context.Context, id, userID uuid.UUID, pendingMsg string) error {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if complaint == nil {
		return fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
	}
	if complaint.UserID != userID {
		return fmt.Errorf("%w: not your complaint", utils.ErrForbidden)
	}
	return fmt.Errorf("%w: %s", utils.ErrForbidden, pendingMsg)
}

func (s *complaintService) ToggleLike(ctx context.Context, userID, id uuid.UUID) (*db_models.Complaint, bool, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if complaint == nil {
		return nil, false, fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
	}

	liked := complaint.ToggleLike(userID.String())
	if err := s.complaintRepo.SaveLikes(ctx, id, complaint.Likes); err != nil {
		return nil, false, err
	}
	return complaint, liked, nil
}

// RequestStatusChange files a field worker's status proposal for admin
// review. The conditional update enforces the at-most-one pending rule; when
// it misses, the current record is read back to name the exact reason.
func (s *complaintService) RequestStatusChange(ctx context.Context, labourID, id uuid.UUID, newStatus, remarks string) (*db_models.Complaint, error) {
	if !db_models.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", utils.ErrValidation, newStatus)
	}

	ok, err := s.complaintRepo.AttachPendingUpdate(ctx, id, labourID, newStatus, strings.TrimSpace(remarks))
	if err != nil {
		return nil, err
	}
	if ok {
		return s.complaintRepo.FindByID(ctx, id)
	}

	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch {
	case complaint == nil:
		return nil, fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
	case complaint.AssignedToID == nil || *complaint.AssignedToID != labourID:
		return nil, fmt.Errorf("%w: complaint is not assigned to you", utils.ErrForbidden)
	case complaint.Status == db_models.StatusResolved:
		return nil, fmt.Errorf("%w: complaint is already resolved", utils.ErrConflict)
	default:
		return nil, fmt.Errorf("%w: a status update is already awaiting review", utils.ErrConflict)
	}
}

func (s *complaintService) ResolvePendingRequest(ctx context.Context, adminID, id uuid.UUID, approve bool, adminNote string) (*db_models.Complaint, error) {
	var (
		complaint *db_models.Complaint
		err       error
	)
	if approve {
		complaint, err = s.complaintRepo.ApprovePendingUpdate(ctx, id, adminID, adminNote)
	} else {
		complaint, err = s.complaintRepo.RejectPendingUpdate(ctx, id, adminID, adminNote)
	}
	if err != nil {
		return nil, err
	}
	if approve {
		s.notifyStatusChange(ctx, complaint, adminNote)
	}
	return complaint, nil
}

func (s *complaintService) SetStatusDirect(ctx context.Context, adminID, id uuid.UUID, newStatus, note string) (*db_models.Complaint, error) {
	if !db_models.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", utils.ErrValidation, newStatus)
	}

	complaint, err := s.complaintRepo.SetStatus(ctx, id, newStatus, adminID, note)
	if err != nil {
		return nil, err
	}
	s.notifyStatusChange(ctx, complaint, note)
	return complaint, nil
}

func (s *complaintService) Assign(ctx context.Context, adminID, id, labourID uuid.UUID) (*db_models.Complaint, error) {
	labour, err := s.accountRepo.FindByID(ctx, labourID)
	if err != nil {
		return nil, err
	}
	if labour == nil || labour.Role != db_models.RoleLabour {
		return nil, fmt.Errorf("%w: assignee must be a labour account", utils.ErrValidation)
	}
	if !labour.Active {
		return nil, fmt.Errorf("%w: labour account is deactivated", utils.ErrValidation)
	}

	ok, err := s.complaintRepo.Assign(ctx, id, labourID, adminID)
	if err != nil {
		return nil, err
	}
	if !ok {
		complaint, err := s.complaintRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if complaint == nil {
			return nil, fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: resolved complaints cannot be reassigned", utils.ErrConflict)
	}
	return s.complaintRepo.FindByID(ctx, id)
}

// notifyStatusChange emails the complaint owner. Failures are logged and
// swallowed; mail is never allowed to fail the request.
func (s *complaintService) notifyStatusChange(ctx context.Context, complaint *db_models.Complaint, note string) {
	if complaint == nil {
		return
	}
	owner, err := s.accountRepo.FindByID(ctx, complaint.UserID)
	if err != nil || owner == nil {
		logger.Warn().Err(err).Str("complaint_id", complaint.ID.String()).Msg("could not load complaint owner for notification")
		return
	}
	if err := s.mailService.SendStatusUpdateNotice(owner.Email, complaint.Title, complaint.Status, note); err != nil {
		logger.Error().Err(err).Str("email", owner.Email).Msg("failed to send status update mail")
	}
}
