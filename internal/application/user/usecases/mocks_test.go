package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"adaptivegame/internal/domain/user"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

type mockResetRepo struct {
	mock.Mock
}

func (m *mockResetRepo) Create(ctx context.Context, reset *user.CredentialReset) error {
	args := m.Called(ctx, reset)
	return args.Error(0)
}

func (m *mockResetRepo) GetActiveByHash(ctx context.Context, hash string) (*user.CredentialReset, error) {
	args := m.Called(ctx, hash)
	r, _ := args.Get(0).(*user.CredentialReset)
	return r, args.Error(1)
}

func (m *mockResetRepo) MarkUsed(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) SendPasswordResetEmail(to, token string) error {
	args := m.Called(to, token)
	return args.Error(0)
}

func (m *mockEmailSender) SendPasswordChangedEmail(to string) error {
	args := m.Called(to)
	return args.Error(0)
}
