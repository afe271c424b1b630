package user

import "context"

// Repository provides access to identity records. Lookups that match no row
// return (nil, nil) rather than an error.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Create(ctx context.Context, u *User) error
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
}

// CredentialResetRepository stores password-reset attempts, one-to-many from
// email address.
type CredentialResetRepository interface {
	Create(ctx context.Context, reset *CredentialReset) error
	GetActiveByHash(ctx context.Context, hash string) (*CredentialReset, error)
	MarkUsed(ctx context.Context, id uint) error
}
