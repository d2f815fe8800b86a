package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fixitfast/internal/models/db_models"
	"fixitfast/pkg/utils"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Save(ctx context.Context, account *db_models.Account) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (bool, error)
	ListByRole(ctx context.Context, role string, page, limit int) ([]db_models.Account, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	err := a.db.WithContext(tctx).Create(account).Error
	if isDuplicate(err) {
		return fmt.Errorf("%w: email already registered", utils.ErrConflict)
	}
	return storeErr(err)
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var account db_models.Account
	err := a.db.WithContext(tctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	var account db_models.Account
	err := a.db.WithContext(tctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &account, nil
}

func (a *accountRepository) Save(ctx context.Context, account *db_models.Account) error {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	return storeErr(a.db.WithContext(tctx).Save(account).Error)
}

func (a *accountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (bool, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	res := a.db.WithContext(tctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (a *accountRepository) ListByRole(ctx context.Context, role string, page, limit int) ([]db_models.Account, int64, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	q := a.db.WithContext(tctx).Model(&db_models.Account{}).Where("role = ?", role)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storeErr(err)
	}

	var accounts []db_models.Account
	err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&accounts).Error
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return accounts, total, nil
}

func (a *accountRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tctx, cancel := withTimeout(ctx)
	defer cancel()

	res := a.db.WithContext(tctx).Delete(&db_models.Account{}, "id = ?", id)
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}
