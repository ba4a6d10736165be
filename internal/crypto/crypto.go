package crypto

import "golang.org/x/crypto/bcrypt"

// cost is the bcrypt work factor for delete-passwords. These guard casual
// tampering with anonymous posts, not accounts, so a low factor is enough.
const cost = 5

func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext produced storedHash. A malformed
// stored hash is treated as a mismatch, never an error.
func CheckPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
