package convert

import (
	"prauts/be/biz/model/domain"
	"prauts/be/biz/model/storage"
)

func AccountRecordToDomain(m *storage.AccountRecord) *domain.Account {
	if m == nil {
		return nil
	}
	return &domain.Account{
		AccountID: m.AccountId,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func AccountRecordsToDomain(ms []*storage.AccountRecord) []*domain.Account {
	out := make([]*domain.Account, 0, len(ms))
	for _, m := range ms {
		out = append(out, AccountRecordToDomain(m))
	}
	return out
}
