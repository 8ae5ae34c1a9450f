package security

import (
	"crypto/rand"
	"errors"
	"math/big"

	"fiftymais/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// PasswordAlphabet leaves out characters that are easy to misread (0 O 1 I l).
const PasswordAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const GeneratedPasswordLength = 10

// PasswordGenerator produces human-typeable initial passwords.
type PasswordGenerator struct {
	length int
}

var _ interfaces.IPasswordGenerator = (*PasswordGenerator)(nil)

func NewPasswordGenerator() *PasswordGenerator {
	return &PasswordGenerator{length: GeneratedPasswordLength}
}

func (g *PasswordGenerator) Generate() (string, error) {
	max := big.NewInt(int64(len(PasswordAlphabet)))
	out := make([]byte, g.length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = PasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}

var ErrPasswordMismatch = errors.New("password mismatch")

// BcryptHasher hashes account passwords.
type BcryptHasher struct {
	cost int
}

var _ interfaces.IPasswordHasher = (*BcryptHasher)(nil)

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
