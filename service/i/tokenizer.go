package i

import (
	"time"
)

// Tokenizer signs and verifies the bearer tokens of the protected routes.
// The "sub" claim names the operator that owns saved mazes.
type Tokenizer interface {
	// Generate signs claims, expiring after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode verifies a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
