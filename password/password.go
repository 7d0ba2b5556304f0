package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies user passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(digest, plain string) bool
}

type Bcrypt struct {
	Cost int
}

func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{Cost: cost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify returns false for a malformed digest.
func (b *Bcrypt) Verify(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
