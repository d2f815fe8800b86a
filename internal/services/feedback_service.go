package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"fixitfast/internal/models/db_models"
	"fixitfast/internal/models/request_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/repositories"
	"fixitfast/pkg/logger"
	"fixitfast/pkg/utils"
)

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, userID uuid.UUID, req request_models.SubmitFeedbackRequest) (*db_models.Feedback, error)
	ListForComplaint(ctx context.Context, actorID uuid.UUID, role string, complaintID uuid.UUID, page, limit int) ([]db_models.Feedback, int64, *response_models.FeedbackStats, error)
	ListMine(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Feedback, int64, error)
	ListAll(ctx context.Context, visible *bool, page, limit int) ([]db_models.Feedback, int64, error)
	Moderate(ctx context.Context, adminID, feedbackID uuid.UUID, visible bool, note string) (*db_models.Feedback, error)
	Delete(ctx context.Context, userID, feedbackID uuid.UUID) error
}

type feedbackService struct {
	feedbackRepo  repositories.FeedbackRepository
	complaintRepo repositories.ComplaintRepository
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	complaintRepo repositories.ComplaintRepository,
) FeedbackServiceInterface {
	return &feedbackService{
		feedbackRepo:  feedbackRepo,
		complaintRepo: complaintRepo,
	}
}

// Submit records feedback for a resolved complaint. Only the complaint owner
// may submit, at most once; the composite unique index backs the pre-check.
func (s *feedbackService) Submit(ctx context.Context, userID uuid.UUID, req request_models.SubmitFeedbackRequest) (*db_models.Feedback, error) {
	complaintID, err := uuid.Parse(req.ComplaintID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid complaint id", utils.ErrValidation)
	}
	if err := validateRatings(&req); err != nil {
		return nil, err
	}

	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
	}
	if complaint.UserID != userID {
		return nil, fmt.Errorf("%w: only the complaint owner can submit feedback", utils.ErrForbidden)
	}
	if complaint.Status != db_models.StatusResolved {
		return nil, fmt.Errorf("%w: feedback is only accepted for resolved complaints", utils.ErrForbidden)
	}

	existing, err := s.feedbackRepo.FindByUserAndComplaint(ctx, userID, complaintID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: feedback already submitted for this complaint", utils.ErrConflict)
	}

	feedback := &db_models.Feedback{
		UserID:         userID,
		ComplaintID:    complaintID,
		Satisfaction:   req.Satisfaction,
		ResolutionMet:  req.ResolutionMet,
		Timeliness:     req.Timeliness,
		Communication:  req.Communication,
		Updates:        req.Updates,
		EaseOfUse:      req.EaseOfUse,
		Recommendation: req.Recommendation,
		LikedMost:      strings.TrimSpace(req.LikedMost),
		Improvement:    strings.TrimSpace(req.Improvement),
		Suggestion:     strings.TrimSpace(req.Suggestion),
		IsVisible:      true,
	}
	if err := s.feedbackRepo.Insert(ctx, feedback); err != nil {
		return nil, err
	}

	if err := s.complaintRepo.IncFeedbackCount(ctx, complaintID, 1); err != nil {
		logger.Warn().Err(err).Str("complaint_id", complaintID.String()).Msg("failed to bump feedback count")
	}
	return feedback, nil
}

func validateRatings(req *request_models.SubmitFeedbackRequest) error {
	if req.Updates == "" {
		req.Updates = "Sometimes"
	}
	checks := []struct {
		field string
		value string
		ok    bool
	}{
		{"satisfaction", req.Satisfaction, db_models.ValidSatisfaction(req.Satisfaction)},
		{"resolution_met", req.ResolutionMet, db_models.ValidResolutionMet(req.ResolutionMet)},
		{"timeliness", req.Timeliness, db_models.ValidTimeliness(req.Timeliness)},
		{"communication", req.Communication, db_models.ValidCommunication(req.Communication)},
		{"updates", req.Updates, db_models.ValidUpdates(req.Updates)},
		{"ease_of_use", req.EaseOfUse, db_models.ValidEaseOfUse(req.EaseOfUse)},
		{"recommendation", req.Recommendation, db_models.ValidRecommendation(req.Recommendation)},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: invalid %s answer %q", utils.ErrValidation, c.field, c.value)
		}
	}
	return nil
}

// ListForComplaint returns feedback for one complaint. Non-admin callers
// must own the complaint and only see visible entries.
func (s *feedbackService) ListForComplaint(ctx context.Context, actorID uuid.UUID, role string, complaintID uuid.UUID, page, limit int) ([]db_models.Feedback, int64, *response_models.FeedbackStats, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return nil, 0, nil, err
	}
	if complaint == nil {
		return nil, 0, nil, fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
	}

	isAdmin := db_models.IsAdminRole(role)
	if !isAdmin && complaint.UserID != actorID {
		return nil, 0, nil, fmt.Errorf("%w: not your complaint", utils.ErrForbidden)
	}

	page, limit = normalizePage(page, limit)
	items, total, err := s.feedbackRepo.ListByComplaint(ctx, complaintID, !isAdmin, page, limit)
	if err != nil {
		return nil, 0, nil, err
	}

	count, avg, err := s.feedbackRepo.StatsForComplaint(ctx, complaintID)
	if err != nil {
		return nil, 0, nil, err
	}
	stats := &response_models.FeedbackStats{Total: count, AvgSatisfaction: avg}
	return items, total, stats, nil
}

func (s *feedbackService) ListMine(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Feedback, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.feedbackRepo.ListByUser(ctx, userID, page, limit)
}

func (s *feedbackService) ListAll(ctx context.Context, visible *bool, page, limit int) ([]db_models.Feedback, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.feedbackRepo.ListAll(ctx, visible, page, limit)
}

func (s *feedbackService) Moderate(ctx context.Context, adminID, feedbackID uuid.UUID, visible bool, note string) (*db_models.Feedback, error) {
	ok, err := s.feedbackRepo.SetModeration(ctx, feedbackID, visible, adminID, strings.TrimSpace(note))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: feedback not found", utils.ErrNotFound)
	}
	return s.feedbackRepo.FindByID(ctx, feedbackID)
}

func (s *feedbackService) Delete(ctx context.Context, userID, feedbackID uuid.UUID) error {
	deleted, err := s.feedbackRepo.DeleteOwned(ctx, feedbackID, userID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return fmt.Errorf("%w: feedback not found", utils.ErrNotFound)
	}

	if err := s.complaintRepo.IncFeedbackCount(ctx, deleted.ComplaintID, -1); err != nil {
		logger.Warn().Err(err).Str("complaint_id", deleted.ComplaintID.String()).Msg("failed to lower feedback count")
	}
	return nil
}
