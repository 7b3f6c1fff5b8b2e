package hash

import "golang.org/x/crypto/bcrypt"

// Hasher is the credential hashing dependency injected into the account
// service. Implementations must be one-way and salted per hash.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hashed string) bool
}

type BcryptHasher struct {
	cost int
}

func NewBcrypt() *BcryptHasher {
	return NewBcryptWithCost(bcrypt.DefaultCost)
}

func NewBcryptWithCost(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
