package user

import (
	"strings"
	"time"

	"adaptivegame/internal/shared/authorization"
)

// User is the identity record behind the admin session.
type User struct {
	ID           uint
	Name         string
	Lastname     string
	Email        string
	DNINumber    string
	Role         authorization.UserRole
	Status       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordHasher abstracts credential hashing so the domain stays free of
// crypto imports.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// VerifyPassword checks the given plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if err := hasher.Verify(password, u.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// DisplayName returns the name to greet the user with, falling back to email.
func (u *User) DisplayName() string {
	full := strings.TrimSpace(u.Name + " " + u.Lastname)
	if full != "" {
		return full
	}
	return u.Email
}

// IsActive reports whether the row status allows this user to log in.
func (u *User) IsActive() bool {
	return u.Status == "active"
}

// NormalizeEmail lower-cases and trims an email the way the login flow
// expects to match the unique email column.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CredentialReset records one password-reset attempt for an email address.
type CredentialReset struct {
	ID        uint
	Email     string
	Hash      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
