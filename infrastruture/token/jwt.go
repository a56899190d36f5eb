package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/dgrijalva/jwt-go"
	"github.com/nbutton23/zxcvbn-go"
)

const (
	minSecretStrengthScore = 3
	minSecretLength        = 32
)

var (
	ErrWeakSecret    = errors.New("jwt secret is too weak")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidIssuer = errors.New("token issuer mismatch")
)

var _ i.Tokenizer = &JwtService{}

// JwtService handles JWT operations.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service after checking the secret's strength.
func NewJwtService(secretKey, issuer string) (*JwtService, error) {
	if err := ValidateSecret(secretKey); err != nil {
		return nil, err
	}
	if issuer == "" {
		return nil, errors.New("jwt issuer is empty")
	}
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}, nil
}

// ValidateSecret rejects short or guessable signing secrets.
func ValidateSecret(secret string) error {
	if len(secret) < minSecretLength {
		return ErrWeakSecret
	}
	result := zxcvbn.PasswordStrength(secret, nil)
	if result.Score < minSecretStrengthScore {
		return ErrWeakSecret
	}
	return nil
}

// Generate creates a JWT for the given claims.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{
		"exp": now.Add(expTime).Unix(),
		"iat": now.Unix(),
		"iss": s.issuer,
	}
	for key, val := range claims {
		jwtClaims[key] = val
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if valid.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
