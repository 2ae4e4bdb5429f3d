package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost sits above the bcrypt default; logins are infrequent
// enough that the extra work factor costs nothing noticeable.
const BcryptCost = 12

// HashPassword derives a bcrypt hash for storage. The hash embeds its
// own salt and cost, so nothing else needs to be persisted.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
