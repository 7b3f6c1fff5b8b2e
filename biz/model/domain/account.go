package domain

import "time"

// Account is the redacted view handed out by the service layer. The
// password hash never leaves the storage model.
type Account struct {
	AccountID string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
