package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash; the plaintext is never stored.
func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

// VerifyPassword returns nil iff plain hashes to the stored hash.
func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
