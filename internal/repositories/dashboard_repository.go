package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "fixitfast/internal/models/db_models"
)

// DashboardRepository serves the read-only aggregation paths. Every call
// re-derives counts from the live tables; there is deliberately no snapshot
// or counter table to fall out of sync.
type DashboardRepository interface {
	StatusCountsForUser(ctx context.Context, userID uuid.UUID) ([]StatusCountRow, error)
	CategoryCountsForUser(ctx context.Context, userID uuid.UUID) ([]CategoryCountRow, error)
	PriorityCountsForUser(ctx context.Context, userID uuid.UUID) ([]PriorityCountRow, error)
	RecentComplaintsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]dbm.Complaint, error)

	StatusCounts(ctx context.Context) ([]StatusCountRow, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryCountRow, error)
	CountPendingUpdates(ctx context.Context) (int64, error)
	CountAccountsByRole(ctx context.Context, role string) (int64, error)
	CountActiveLabours(ctx context.Context) (int64, error)
	RecentComplaints(ctx context.Context, limit int) ([]dbm.Complaint, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------

type StatusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type CategoryCountRow struct {
	Category string `gorm:"column:category"`
	Count    int64  `gorm:"column:count"`
}

type PriorityCountRow struct {
	Priority string `gorm:"column:priority"`
	Count    int64  `gorm:"column:count"`
}

// ---------- Per-user ----------

func (r *dashboardRepository) StatusCountsForUser(ctx context.Context, userID uuid.UUID) ([]StatusCountRow, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var rows []StatusCountRow
	err := r.db.WithContext(tctx).
		Model(&dbm.Complaint{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Find(&rows).Error
	return rows, storeErr(err)
}

func (r *dashboardRepository) CategoryCountsForUser(ctx context.Context, userID uuid.UUID) ([]CategoryCountRow, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var rows []CategoryCountRow
	err := r.db.WithContext(tctx).
		Model(&dbm.Complaint{}).
		Select("category, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("category").
		Order("count DESC").
		Find(&rows).Error
	return rows, storeErr(err)
}

func (r *dashboardRepository) PriorityCountsForUser(ctx context.Context, userID uuid.UUID) ([]PriorityCountRow, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var rows []PriorityCountRow
	err := r.db.WithContext(tctx).
		Model(&dbm.Complaint{}).
		Select("priority, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("priority").
		Order("count DESC").
		Find(&rows).Error
	return rows, storeErr(err)
}

func (r *dashboardRepository) RecentComplaintsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]dbm.Complaint, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var complaints []dbm.Complaint
	err := r.db.WithContext(tctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&complaints).Error
	return complaints, storeErr(err)
}

// ---------- System-wide ----------

func (r *dashboardRepository) StatusCounts(ctx context.Context) ([]StatusCountRow, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var rows []StatusCountRow
	err := r.db.WithContext(tctx).
		Model(&dbm.Complaint{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error
	return rows, storeErr(err)
}

func (r *dashboardRepository) TopCategories(ctx context.Context, limit int) ([]CategoryCountRow, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var rows []CategoryCountRow
	err := r.db.WithContext(tctx).
		Model(&dbm.Complaint{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, storeErr(err)
}

func (r *dashboardRepository) CountPendingUpdates(ctx context.Context) (int64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int64
	err := r.db.WithContext(tctx).
		Model(&dbm.Complaint{}).
		Where("pending_requested_at IS NOT NULL").
		Count(&n).Error
	return n, storeErr(err)
}

func (r *dashboardRepository) CountAccountsByRole(ctx context.Context, role string) (int64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int64
	err := r.db.WithContext(tctx).
		Model(&dbm.Account{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, storeErr(err)
}

func (r *dashboardRepository) CountActiveLabours(ctx context.Context) (int64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int64
	err := r.db.WithContext(tctx).
		Model(&dbm.Account{}).
		Where("role = ? AND active = ?", dbm.RoleLabour, true).
		Count(&n).Error
	return n, storeErr(err)
}

func (r *dashboardRepository) RecentComplaints(ctx context.Context, limit int) ([]dbm.Complaint, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var complaints []dbm.Complaint
	err := r.db.WithContext(tctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&complaints).Error
	return complaints, storeErr(err)
}
