package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fixitfast/internal/models/db_models"
)

type AttendanceRepository interface {
	Insert(ctx context.Context, entry *db_models.AttendanceEntry) error
	LatestForLabour(ctx context.Context, labourID uuid.UUID) (*db_models.AttendanceEntry, error)
	ListForLabour(ctx context.Context, labourID uuid.UUID, from, to time.Time, page, limit int) ([]db_models.AttendanceEntry, int64, error)
	EntriesBetween(ctx context.Context, labourID uuid.UUID, from, to time.Time) ([]db_models.AttendanceEntry, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Insert(ctx context.Context, entry *db_models.AttendanceEntry) error {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	return storeErr(r.db.WithContext(tctx).Create(entry).Error)
}

func (r *attendanceRepository) LatestForLabour(ctx context.Context, labourID uuid.UUID) (*db_models.AttendanceEntry, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var entry db_models.AttendanceEntry
	err := r.db.WithContext(tctx).
		Where("labour_id = ?", labourID).
		Order("occurred_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &entry, nil
}

func (r *attendanceRepository) ListForLabour(ctx context.Context, labourID uuid.UUID, from, to time.Time, page, limit int) ([]db_models.AttendanceEntry, int64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	q := r.db.WithContext(tctx).
		Model(&db_models.AttendanceEntry{}).
		Where("labour_id = ?", labourID)
	if !from.IsZero() {
		q = q.Where("occurred_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("occurred_at <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storeErr(err)
	}

	var entries []db_models.AttendanceEntry
	err := q.
		Order("occurred_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return entries, total, nil
}

// EntriesBetween returns the full window oldest-first, which is the order
// the summary fold expects.
func (r *attendanceRepository) EntriesBetween(ctx context.Context, labourID uuid.UUID, from, to time.Time) ([]db_models.AttendanceEntry, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var entries []db_models.AttendanceEntry
	err := r.db.WithContext(tctx).
		Where("labour_id = ? AND occurred_at >= ? AND occurred_at <= ?", labourID, from, to).
		Order("occurred_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}
