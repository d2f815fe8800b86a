package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fixitfast/internal/models/db_models"
	"fixitfast/pkg/utils"
)

type ComplaintFilter struct {
	UserID       *uuid.UUID
	AssignedToID *uuid.UUID
	Status       string
	Category     string
	Priority     string
	Page         int
	Limit        int
}

type ComplaintRepository interface {
	Insert(ctx context.Context, complaint *db_models.Complaint, note string) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Complaint, error)
	List(ctx context.Context, f ComplaintFilter) ([]db_models.Complaint, int64, error)
	ListPendingUpdates(ctx context.Context, page, limit int) ([]db_models.Complaint, int64, error)

	UpdateOwned(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) (bool, error)
	DeleteOwnedPending(ctx context.Context, id, userID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	AttachPendingUpdate(ctx context.Context, id, labourID uuid.UUID, newStatus, remarks string) (bool, error)
	ApprovePendingUpdate(ctx context.Context, id, adminID uuid.UUID, adminNote string) (*db_models.Complaint, error)
	RejectPendingUpdate(ctx context.Context, id, adminID uuid.UUID, adminNote string) (*db_models.Complaint, error)
	SetStatus(ctx context.Context, id uuid.UUID, newStatus string, adminID uuid.UUID, note string) (*db_models.Complaint, error)

	Assign(ctx context.Context, id, labourID, adminID uuid.UUID) (bool, error)
	SaveLikes(ctx context.Context, id uuid.UUID, likes pq.StringArray) error
	IncFeedbackCount(ctx context.Context, id uuid.UUID, delta int) error
}

type complaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Insert creates the complaint together with its first history entry so a
// stored complaint always has history length >= 1.
func (r *complaintRepository) Insert(ctx context.Context, complaint *db_models.Complaint, note string) error {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(tctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(complaint).Error; err != nil {
			return err
		}
		entry := db_models.StatusHistoryEntry{
			ComplaintID: complaint.ID,
			Status:      complaint.Status,
			UpdatedByID: complaint.UserID,
			Note:        note,
		}
		return tx.Create(&entry).Error
	})
	return storeErr(err)
}

func (r *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Complaint, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var complaint db_models.Complaint
	err := r.db.WithContext(tctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&complaint, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &complaint, nil
}

func (r *complaintRepository) List(ctx context.Context, f ComplaintFilter) ([]db_models.Complaint, int64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	q := r.db.WithContext(tctx).Model(&db_models.Complaint{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.AssignedToID != nil {
		q = q.Where("assigned_to_id = ?", *f.AssignedToID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storeErr(err)
	}

	var complaints []db_models.Complaint
	err := q.
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&complaints).Error
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return complaints, total, nil
}

func (r *complaintRepository) ListPendingUpdates(ctx context.Context, page, limit int) ([]db_models.Complaint, int64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	q := r.db.WithContext(tctx).
		Model(&db_models.Complaint{}).
		Where("pending_requested_at IS NOT NULL")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storeErr(err)
	}

	var complaints []db_models.Complaint
	err := q.
		Order("pending_requested_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&complaints).Error
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return complaints, total, nil
}

// UpdateOwned edits fields of an owned complaint only while it is still
// Pending; the guard lives in the WHERE clause so an admin approval racing
// the edit cannot produce a lost update.
func (r *complaintRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) (bool, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(tctx).
		Model(&db_models.Complaint{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, db_models.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *complaintRepository) DeleteOwnedPending(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(tctx).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, db_models.StatusPending).
		Delete(&db_models.Complaint{})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *complaintRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(tctx).Delete(&db_models.Complaint{}, "id = ?", id)
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// AttachPendingUpdate is a single conditional write: it succeeds only when
// the complaint is assigned to labourID, is not Resolved, and has no request
// outstanding. Two racing workers cannot both get a row in.
func (r *complaintRepository) AttachPendingUpdate(ctx context.Context, id, labourID uuid.UUID, newStatus, remarks string) (bool, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now()
	updates := map[string]interface{}{
		"pending_new_status":      newStatus,
		"pending_requested_by_id": labourID,
		"pending_requested_at":    now,
		"pending_remarks":         remarks,
		"updated_at":              now.Unix(),
	}
	switch newStatus {
	case db_models.StatusInProgress:
		updates["work_started_at"] = gorm.Expr("COALESCE(work_started_at, ?)", now)
	case db_models.StatusResolved:
		updates["work_completed_at"] = gorm.Expr("COALESCE(work_completed_at, ?)", now)
	}

	res := r.db.WithContext(tctx).
		Model(&db_models.Complaint{}).
		Where("id = ? AND assigned_to_id = ? AND status <> ? AND pending_requested_at IS NULL",
			id, labourID, db_models.StatusResolved).
		Updates(updates)
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *complaintRepository) ApprovePendingUpdate(ctx context.Context, id, adminID uuid.UUID, adminNote string) (*db_models.Complaint, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(tctx).Transaction(func(tx *gorm.DB) error {
		var c db_models.Complaint
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
			}
			return err
		}
		if !c.HasPendingUpdate() {
			return fmt.Errorf("%w: no pending status update for this complaint", utils.ErrNotFound)
		}
		// Resolved is terminal. A request that was raised before the
		// complaint got resolved directly is stale and must not be
		// applied.
		if c.Status == db_models.StatusResolved {
			return fmt.Errorf("%w: complaint is already resolved", utils.ErrConflict)
		}

		newStatus := c.Pending.NewStatus
		updatedBy := adminID
		if c.Pending.RequestedByID != nil {
			updatedBy = *c.Pending.RequestedByID
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":                  newStatus,
			"pending_new_status":      "",
			"pending_requested_by_id": nil,
			"pending_requested_at":    nil,
			"pending_remarks":         "",
			"updated_at":              now.Unix(),
		}
		if adminNote != "" {
			updates["admin_note"] = adminNote
		}
		if newStatus == db_models.StatusResolved && c.Status != db_models.StatusResolved {
			updates["work_completed_at"] = now
		}
		if err := tx.Model(&db_models.Complaint{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		note := "Status update approved by admin"
		if c.Pending.Remarks != "" {
			note += ": " + c.Pending.Remarks
		}
		if adminNote != "" {
			note += " (Admin note: " + adminNote + ")"
		}
		entry := db_models.StatusHistoryEntry{
			ComplaintID: id,
			Status:      newStatus,
			UpdatedByID: updatedBy,
			Note:        note,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, passErr(err)
	}
	return r.FindByID(ctx, id)
}

// RejectPendingUpdate discards the request without touching status. The
// rejection is still recorded in history.
func (r *complaintRepository) RejectPendingUpdate(ctx context.Context, id, adminID uuid.UUID, adminNote string) (*db_models.Complaint, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(tctx).Transaction(func(tx *gorm.DB) error {
		var c db_models.Complaint
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
			}
			return err
		}
		if !c.HasPendingUpdate() {
			return fmt.Errorf("%w: no pending status update for this complaint", utils.ErrNotFound)
		}

		updates := map[string]interface{}{
			"pending_new_status":      "",
			"pending_requested_by_id": nil,
			"pending_requested_at":    nil,
			"pending_remarks":         "",
			"updated_at":              time.Now().Unix(),
		}
		if err := tx.Model(&db_models.Complaint{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		note := "Status update request rejected"
		if adminNote != "" {
			note += ": " + adminNote
		}
		entry := db_models.StatusHistoryEntry{
			ComplaintID: id,
			Status:      c.Status,
			UpdatedByID: adminID,
			Note:        note,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, passErr(err)
	}
	return r.FindByID(ctx, id)
}

// SetStatus is the admin shortcut around the two-phase flow. Resolved is
// terminal: once there, no transition away is accepted.
func (r *complaintRepository) SetStatus(ctx context.Context, id uuid.UUID, newStatus string, adminID uuid.UUID, note string) (*db_models.Complaint, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(tctx).Transaction(func(tx *gorm.DB) error {
		var c db_models.Complaint
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: complaint not found", utils.ErrNotFound)
			}
			return err
		}
		if c.Status == db_models.StatusResolved && newStatus != db_models.StatusResolved {
			return fmt.Errorf("%w: resolved complaints cannot change status", utils.ErrConflict)
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":     newStatus,
			"updated_at": now.Unix(),
		}
		if note != "" {
			updates["admin_note"] = note
		}
		if newStatus == db_models.StatusResolved && c.Status != db_models.StatusResolved {
			updates["work_completed_at"] = now
		}
		// Resolving directly invalidates any request still awaiting
		// review, otherwise a later approval could move the complaint
		// away from Resolved.
		if newStatus == db_models.StatusResolved && c.HasPendingUpdate() {
			updates["pending_new_status"] = ""
			updates["pending_requested_by_id"] = nil
			updates["pending_requested_at"] = nil
			updates["pending_remarks"] = ""
		}
		if err := tx.Model(&db_models.Complaint{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		historyNote := note
		if historyNote == "" {
			historyNote = fmt.Sprintf("Status changed from %s to %s", c.Status, newStatus)
		}
		entry := db_models.StatusHistoryEntry{
			ComplaintID: id,
			Status:      newStatus,
			UpdatedByID: adminID,
			Note:        historyNote,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, passErr(err)
	}
	return r.FindByID(ctx, id)
}

func (r *complaintRepository) Assign(ctx context.Context, id, labourID, adminID uuid.UUID) (bool, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now()
	res := r.db.WithContext(tctx).
		Model(&db_models.Complaint{}).
		Where("id = ? AND status <> ?", id, db_models.StatusResolved).
		Updates(map[string]interface{}{
			"assigned_to_id": labourID,
			"assigned_by_id": adminID,
			"assigned_at":    now,
			"updated_at":     now.Unix(),
		})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *complaintRepository) SaveLikes(ctx context.Context, id uuid.UUID, likes pq.StringArray) error {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	return storeErr(r.db.WithContext(tctx).
		Model(&db_models.Complaint{}).
		Where("id = ?", id).
		Update("likes", likes).Error)
}

func (r *complaintRepository) IncFeedbackCount(ctx context.Context, id uuid.UUID, delta int) error {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	return storeErr(r.db.WithContext(tctx).
		Model(&db_models.Complaint{}).
		Where("id = ?", id).
		UpdateColumn("feedback_count", gorm.Expr("GREATEST(feedback_count + ?, 0)", delta)).Error)
}
