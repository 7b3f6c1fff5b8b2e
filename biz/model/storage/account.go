package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

// AccountRecord is the write model. Email uniqueness is enforced by the
// index; the service-level pre-check is only an optimization.
type AccountRecord struct {
	GormModel
	AccountId    string `gorm:"size:64;not null;uniqueIndex"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:128;not null"`
}

func (AccountRecord) TableName() string {
	return "accounts"
}
