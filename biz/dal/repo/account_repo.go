package repo

import (
	"context"
	"errors"

	"prauts/be/biz/model/storage"
	"prauts/be/biz/util/id_gen"

	"gorm.io/gorm"
)

// ErrNoRecord is returned by write operations that matched zero rows.
var ErrNoRecord = errors.New("no matching record")

// AccountRepository is pure data access. Business rules (uniqueness
// pre-checks, credential verification) live in the service layer.
type AccountRepository interface {
	ListAll(ctx context.Context) ([]*storage.AccountRecord, error)
	FindByAccountID(ctx context.Context, accountID string) (*storage.AccountRecord, error)
	FindByEmail(ctx context.Context, email string) (*storage.AccountRecord, error)
	Create(ctx context.Context, rec *storage.AccountRecord) (*storage.AccountRecord, error)
	UpdateProfile(ctx context.Context, accountID, name, email string) error
	UpdatePassword(ctx context.Context, accountID, passwordHash string) error
	Delete(ctx context.Context, accountID string) error
}

type AccountRepositoryGorm struct {
	db *gorm.DB
}

func NewAccountRepositoryGorm(db *gorm.DB) *AccountRepositoryGorm {
	return &AccountRepositoryGorm{db: db}
}

func (r *AccountRepositoryGorm) ListAll(ctx context.Context) ([]*storage.AccountRecord, error) {
	var ms []*storage.AccountRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *AccountRepositoryGorm) FindByAccountID(ctx context.Context, accountID string) (*storage.AccountRecord, error) {
	var m storage.AccountRecord
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AccountRepositoryGorm) FindByEmail(ctx context.Context, email string) (*storage.AccountRecord, error) {
	var m storage.AccountRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AccountRepositoryGorm) Create(ctx context.Context, rec *storage.AccountRecord) (*storage.AccountRecord, error) {
	if rec.AccountId == "" {
		rec.AccountId = id_gen.NewID()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *AccountRepositoryGorm) UpdateProfile(ctx context.Context, accountID, name, email string) error {
	res := r.db.WithContext(ctx).
		Model(&storage.AccountRecord{}).
		Where("account_id = ?", accountID).
		Updates(map[string]any{"name": name, "email": email})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}

func (r *AccountRepositoryGorm) UpdatePassword(ctx context.Context, accountID, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&storage.AccountRecord{}).
		Where("account_id = ?", accountID).
		Updates(map[string]any{"password_hash": passwordHash})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}

func (r *AccountRepositoryGorm) Delete(ctx context.Context, accountID string) error {
	res := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&storage.AccountRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}
