package account

import (
	"context"

	"prauts/be/biz/dal/cache"
	"prauts/be/biz/dal/repo"
	"prauts/be/biz/db/mysql"
	"prauts/be/biz/db/redis"
	"prauts/be/biz/model/convert"
	"prauts/be/biz/model/domain"
	"prauts/be/biz/model/errs"
	"prauts/be/biz/model/storage"
	"prauts/be/biz/util/hash"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ViewCache is a best-effort read cache for redacted account views.
// Cache errors are logged, never surfaced.
type ViewCache interface {
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	Set(ctx context.Context, a *domain.Account) error
	Invalidate(ctx context.Context, accountID string) error
}

type Service struct {
	accounts repo.AccountRepository
	hasher   hash.Hasher
	views    ViewCache
}

func New(accounts repo.AccountRepository, hasher hash.Hasher, views ViewCache) *Service {
	return &Service{accounts: accounts, hasher: hasher, views: views}
}

func NewDefault() *Service {
	return New(
		repo.NewAccountRepositoryGorm(mysql.GetDbConn()),
		hash.NewBcrypt(),
		cache.NewAccountViewCache(redis.GetRedisClient()),
	)
}

func (s *Service) List(ctx context.Context) ([]*domain.Account, errs.Error) {
	ms, err := s.accounts.ListAll(ctx)
	if err != nil {
		return nil, errs.ServerError
	}
	return convert.AccountRecordsToDomain(ms), nil
}

func (s *Service) Get(ctx context.Context, accountID string) (*domain.Account, errs.Error) {
	if cached, err := s.views.Get(ctx, accountID); err != nil {
		hlog.CtxWarnf(ctx, "view cache get err: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	m, err := s.accounts.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, errs.ServerError
	}
	if m == nil {
		return nil, errs.AccountNotFound
	}

	a := convert.AccountRecordToDomain(m)
	if err := s.views.Set(ctx, a); err != nil {
		hlog.CtxWarnf(ctx, "view cache set err: %v", err)
	}
	return a, nil
}

// Create enforces email uniqueness and the password confirmation match,
// then persists the account with a bcrypt hash. The read-then-write
// uniqueness check is advisory; the unique index on email is the
// guarantee, and its violation maps back to EmailAlreadyTaken.
func (s *Service) Create(ctx context.Context, name, email, password, passwordConfirm string) (*domain.Account, errs.Error) {
	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.ServerError
	}
	if existing != nil {
		return nil, errs.EmailAlreadyTaken
	}

	if password != passwordConfirm {
		return nil, errs.InvalidPassword
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errs.ServerError
	}

	created, err := s.accounts.Create(ctx, &storage.AccountRecord{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.EmailAlreadyTaken
		}
		return nil, errs.Unprocessable
	}

	return convert.AccountRecordToDomain(created), nil
}

// Update changes name and email. The uniqueness check exempts the
// account's own email, so re-submitting an unchanged email succeeds.
func (s *Service) Update(ctx context.Context, accountID, name, email string) errs.Error {
	cur, err := s.accounts.FindByAccountID(ctx, accountID)
	if err != nil {
		return errs.ServerError
	}
	if cur == nil {
		return errs.AccountNotFound
	}

	other, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return errs.ServerError
	}
	if other != nil && other.AccountId != accountID {
		return errs.EmailAlreadyTaken
	}

	if err := s.accounts.UpdateProfile(ctx, accountID, name, email); err != nil {
		switch {
		case errs.IsDuplicatedErr(err):
			return errs.EmailAlreadyTaken
		case err == repo.ErrNoRecord:
			return errs.AccountNotFound
		default:
			return errs.Unprocessable
		}
	}

	s.invalidateView(ctx, accountID)
	return nil
}

func (s *Service) Delete(ctx context.Context, accountID string) errs.Error {
	cur, err := s.accounts.FindByAccountID(ctx, accountID)
	if err != nil {
		return errs.ServerError
	}
	if cur == nil {
		return errs.AccountNotFound
	}

	if err := s.accounts.Delete(ctx, accountID); err != nil {
		if err == repo.ErrNoRecord {
			return errs.AccountNotFound
		}
		return errs.Unprocessable
	}

	s.invalidateView(ctx, accountID)
	return nil
}

// ChangePassword verifies the old password against the stored hash,
// checks the confirmation, and writes a fresh hash. The account id is
// the identity for the whole operation.
func (s *Service) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword, passwordConfirm string) errs.Error {
	cur, err := s.accounts.FindByAccountID(ctx, accountID)
	if err != nil {
		return errs.ServerError
	}
	if cur == nil {
		return errs.AccountNotFound
	}

	if !s.hasher.Compare(oldPassword, cur.PasswordHash) {
		return errs.InvalidOldPassword
	}

	if newPassword != passwordConfirm {
		return errs.InvalidConfirmPassword
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errs.ServerError
	}

	if err := s.accounts.UpdatePassword(ctx, accountID, hashed); err != nil {
		if err == repo.ErrNoRecord {
			return errs.AccountNotFound
		}
		return errs.Unprocessable
	}

	return nil
}

func (s *Service) invalidateView(ctx context.Context, accountID string) {
	if err := s.views.Invalidate(ctx, accountID); err != nil {
		hlog.CtxWarnf(ctx, "view cache invalidate err: %v", err)
	}
}
