package passwords

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Hasher struct {
	Cost int
}

func NewHasher() *Hasher {
	return &Hasher{
		Cost: bcrypt.DefaultCost,
	}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err)
	}
	return string(hashed), nil
}

func (h *Hasher) Compare(hashedPassword, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plaintext))
}
