package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetClaims carries the email a password-reset token was issued for.
type ResetClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ResetTokenService issues and verifies the signed tokens embedded in
// password-reset links. The token itself travels by email; only its SHA-256
// hash is stored, so a database leak does not expose usable links.
type ResetTokenService struct {
	secret     []byte
	expMinutes int
}

func NewResetTokenService(secret string, expMinutes int) *ResetTokenService {
	return &ResetTokenService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
	}
}

// Generate signs a reset token for the given email.
func (s *ResetTokenService) Generate(email string) (string, error) {
	now := time.Now().UTC()
	claims := &ResetClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the email the token was
// issued for.
func (s *ResetTokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse reset token: %w", err)
	}

	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid reset token")
	}
	return claims.Email, nil
}

// HashToken returns the digest used to look the token up later.
func (s *ResetTokenService) HashToken(token string) string {
	return HashToken(token)
}

// HashToken returns the hex SHA-256 digest stored alongside a reset attempt.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
