package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/infrastructure/auth"
	"adaptivegame/internal/shared/logger"
)

func activeUser(t *testing.T, hasher user.PasswordHasher, password string) *user.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	return &user.User{
		ID:           1,
		Name:         "Demo",
		Lastname:     "Admin",
		Email:        "demo@adaptive.game",
		Status:       "active",
		PasswordHash: hash,
	}
}

func TestLoginWithPasswordUseCase_Execute(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	log := logger.NewLogger()
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(mockUserRepo)
		u := activeUser(t, hasher, "demo1234")
		repo.On("GetByEmail", ctx, "demo@adaptive.game").Return(u, nil)

		uc := NewLoginWithPasswordUseCase(repo, hasher, log)
		result, err := uc.Execute(ctx, LoginWithPasswordCommand{
			Email:    "demo@adaptive.game",
			Password: "demo1234",
		})

		require.NoError(t, err)
		assert.Equal(t, u.ID, result.User.ID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, mock.Anything).Return(nil, nil)

		uc := NewLoginWithPasswordUseCase(repo, hasher, log)
		_, err := uc.Execute(ctx, LoginWithPasswordCommand{
			Email:    "ghost@adaptive.game",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, mock.Anything).Return(activeUser(t, hasher, "demo1234"), nil)

		uc := NewLoginWithPasswordUseCase(repo, hasher, log)
		_, err := uc.Execute(ctx, LoginWithPasswordCommand{
			Email:    "demo@adaptive.game",
			Password: "not-the-password",
		})

		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("inactive account gets the same error", func(t *testing.T) {
		repo := new(mockUserRepo)
		u := activeUser(t, hasher, "demo1234")
		u.Status = "inactive"
		repo.On("GetByEmail", ctx, mock.Anything).Return(u, nil)

		uc := NewLoginWithPasswordUseCase(repo, hasher, log)
		_, err := uc.Execute(ctx, LoginWithPasswordCommand{
			Email:    "demo@adaptive.game",
			Password: "demo1234",
		})

		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("user without stored hash cannot log in", func(t *testing.T) {
		repo := new(mockUserRepo)
		u := activeUser(t, hasher, "demo1234")
		u.PasswordHash = ""
		repo.On("GetByEmail", ctx, mock.Anything).Return(u, nil)

		uc := NewLoginWithPasswordUseCase(repo, hasher, log)
		_, err := uc.Execute(ctx, LoginWithPasswordCommand{
			Email:    "demo@adaptive.game",
			Password: "demo1234",
		})

		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestGetUserUseCase_Execute(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	log := logger.NewLogger()
	ctx := context.Background()

	t.Run("active user", func(t *testing.T) {
		repo := new(mockUserRepo)
		u := activeUser(t, hasher, "demo1234")
		repo.On("GetByID", ctx, uint(1)).Return(u, nil)

		uc := NewGetUserUseCase(repo, log)
		found, err := uc.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Demo Admin", found.DisplayName())
	})

	t.Run("missing user", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByID", ctx, uint(7)).Return(nil, nil)

		uc := NewGetUserUseCase(repo, log)
		_, err := uc.Execute(ctx, 7)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("inactive user", func(t *testing.T) {
		repo := new(mockUserRepo)
		u := activeUser(t, hasher, "demo1234")
		u.Status = "deleted"
		repo.On("GetByID", ctx, uint(1)).Return(u, nil)

		uc := NewGetUserUseCase(repo, log)
		_, err := uc.Execute(ctx, 1)
		assert.ErrorIs(t, err, user.ErrUserInactive)
	})
}
