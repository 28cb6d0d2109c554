package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword takes a plaintext password and returns a bcrypt hash.
// bcrypt.DefaultCost is a sane default (adjust for security/performance needs).
func HashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword verifies a plaintext password against a stored hash.
// It returns true when the password matches.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
