package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fixitfast/internal/models/db_models"
	"fixitfast/pkg/utils"
)

type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *db_models.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error)
	FindByUserAndComplaint(ctx context.Context, userID, complaintID uuid.UUID) (*db_models.Feedback, error)
	ListByComplaint(ctx context.Context, complaintID uuid.UUID, visibleOnly bool, page, limit int) ([]db_models.Feedback, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Feedback, int64, error)
	ListAll(ctx context.Context, visible *bool, page, limit int) ([]db_models.Feedback, int64, error)
	SetModeration(ctx context.Context, id uuid.UUID, visible bool, moderatorID uuid.UUID, note string) (bool, error)
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) (*db_models.Feedback, error)
	StatsForComplaint(ctx context.Context, complaintID uuid.UUID) (int64, float64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Insert(ctx context.Context, feedback *db_models.Feedback) error {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(tctx).Create(feedback).Error
	if isDuplicate(err) {
		return fmt.Errorf("%w: feedback already submitted for this complaint", utils.ErrConflict)
	}
	return storeErr(err)
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var feedback db_models.Feedback
	err := r.db.WithContext(tctx).First(&feedback, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindByUserAndComplaint(ctx context.Context, userID, complaintID uuid.UUID) (*db_models.Feedback, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var feedback db_models.Feedback
	err := r.db.WithContext(tctx).
		First(&feedback, "user_id = ? AND complaint_id = ?", userID, complaintID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListByComplaint(ctx context.Context, complaintID uuid.UUID, visibleOnly bool, page, limit int) ([]db_models.Feedback, int64, error) {
	q := r.db.Model(&db_models.Feedback{}).Where("complaint_id = ?", complaintID)
	if visibleOnly {
		q = q.Where("is_visible = ?", true)
	}
	return r.page(ctx, q, page, limit)
}

func (r *feedbackRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Feedback, int64, error) {
	q := r.db.Model(&db_models.Feedback{}).Where("user_id = ?", userID)
	return r.page(ctx, q, page, limit)
}

func (r *feedbackRepository) ListAll(ctx context.Context, visible *bool, page, limit int) ([]db_models.Feedback, int64, error) {
	q := r.db.Model(&db_models.Feedback{})
	if visible != nil {
		q = q.Where("is_visible = ?", *visible)
	}
	return r.page(ctx, q, page, limit)
}

func (r *feedbackRepository) page(ctx context.Context, q *gorm.DB, page, limit int) ([]db_models.Feedback, int64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()
	q = q.WithContext(tctx)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storeErr(err)
	}

	var feedback []db_models.Feedback
	err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&feedback).Error
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return feedback, total, nil
}

func (r *feedbackRepository) SetModeration(ctx context.Context, id uuid.UUID, visible bool, moderatorID uuid.UUID, note string) (bool, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(tctx).
		Model(&db_models.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_visible":      visible,
			"is_moderated":    true,
			"moderated_by_id": moderatorID,
			"moderation_note": note,
			"updated_at":      time.Now().Unix(),
		})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *feedbackRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (*db_models.Feedback, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var feedback db_models.Feedback
	err := r.db.WithContext(tctx).First(&feedback, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	if err := r.db.WithContext(tctx).Delete(&feedback).Error; err != nil {
		return nil, storeErr(err)
	}
	return &feedback, nil
}

type feedbackStatsRow struct {
	Total int64   `gorm:"column:total"`
	Avg   float64 `gorm:"column:avg_satisfaction"`
}

// StatsForComplaint computes the visible-feedback count and average
// satisfaction score (1..5) in one aggregate query.
func (r *feedbackRepository) StatsForComplaint(ctx context.Context, complaintID uuid.UUID) (int64, float64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var row feedbackStatsRow
	err := r.db.WithContext(tctx).
		Model(&db_models.Feedback{}).
		Select(`COUNT(*) AS total,
			COALESCE(AVG(CASE satisfaction
				WHEN 'Very satisfied' THEN 5
				WHEN 'Satisfied' THEN 4
				WHEN 'Neutral' THEN 3
				WHEN 'Unsatisfied' THEN 2
				WHEN 'Very unsatisfied' THEN 1
			END), 0) AS avg_satisfaction`).
		Where("complaint_id = ? AND is_visible = ?", complaintID, true).
		Scan(&row).Error
	if err != nil {
		return 0, 0, storeErr(err)
	}
	return row.Total, row.Avg, nil
}
