package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost balances brute-force resistance against login latency.
const DefaultBcryptCost = 10

// HashPassword hashes a plaintext password with the given bcrypt cost.
// The digest embeds its own salt and cost and is safe to store directly.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain maps to the stored digest. A
// malformed digest counts as a mismatch rather than an error.
func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
