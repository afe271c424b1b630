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

func TestRequestPasswordResetUseCase_Execute(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	tokens := auth.NewResetTokenService("test-secret", 30)
	log := logger.NewLogger()
	ctx := context.Background()

	t.Run("known email records an attempt and sends mail", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		resetRepo := new(mockResetRepo)
		sender := new(mockEmailSender)

		u := activeUser(t, hasher, "demo1234")
		userRepo.On("GetByEmail", ctx, "demo@adaptive.game").Return(u, nil)
		resetRepo.On("Create", ctx, mock.MatchedBy(func(r *user.CredentialReset) bool {
			return r.Email == "demo@adaptive.game" && len(r.Hash) == 64
		})).Return(nil)
		sender.On("SendPasswordResetEmail", "demo@adaptive.game", mock.Anything).Return(nil)

		uc := NewRequestPasswordResetUseCase(userRepo, resetRepo, tokens, sender, log)
		err := uc.Execute(ctx, RequestPasswordResetCommand{Email: " Demo@Adaptive.Game "})

		require.NoError(t, err)
		resetRepo.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("unknown email completes silently", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		resetRepo := new(mockResetRepo)
		sender := new(mockEmailSender)

		userRepo.On("GetByEmail", ctx, mock.Anything).Return(nil, nil)

		uc := NewRequestPasswordResetUseCase(userRepo, resetRepo, tokens, sender, log)
		err := uc.Execute(ctx, RequestPasswordResetCommand{Email: "ghost@adaptive.game"})

		require.NoError(t, err)
		resetRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		sender.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything)
	})
}

func TestResetPasswordUseCase_Execute(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	tokens := auth.NewResetTokenService("test-secret", 30)
	log := logger.NewLogger()
	ctx := context.Background()

	issueToken := func(t *testing.T) string {
		t.Helper()
		token, err := tokens.Generate("demo@adaptive.game")
		require.NoError(t, err)
		return token
	}

	t.Run("valid token updates the hash once", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		resetRepo := new(mockResetRepo)
		sender := new(mockEmailSender)

		token := issueToken(t)
		u := activeUser(t, hasher, "old-password")

		resetRepo.On("GetActiveByHash", ctx, tokens.HashToken(token)).
			Return(&user.CredentialReset{ID: 5, Email: "demo@adaptive.game", Status: "active"}, nil)
		resetRepo.On("MarkUsed", ctx, uint(5)).Return(nil)
		userRepo.On("GetByEmail", ctx, "demo@adaptive.game").Return(u, nil)
		userRepo.On("UpdatePasswordHash", ctx, u.ID, mock.Anything).Return(nil)
		sender.On("SendPasswordChangedEmail", "demo@adaptive.game").Return(nil)

		uc := NewResetPasswordUseCase(userRepo, resetRepo, tokens, hasher, sender, log)
		err := uc.Execute(ctx, ResetPasswordCommand{Token: token, NewPassword: "fresh-password"})

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
		resetRepo.AssertExpectations(t)
	})

	t.Run("consumed token is rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		resetRepo := new(mockResetRepo)
		sender := new(mockEmailSender)

		token := issueToken(t)
		resetRepo.On("GetActiveByHash", ctx, mock.Anything).Return(nil, nil)

		uc := NewResetPasswordUseCase(userRepo, resetRepo, tokens, hasher, sender, log)
		err := uc.Execute(ctx, ResetPasswordCommand{Token: token, NewPassword: "fresh-password"})

		assert.ErrorIs(t, err, user.ErrResetNotFound)
		userRepo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("forged token is rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		resetRepo := new(mockResetRepo)
		sender := new(mockEmailSender)

		forged, err := auth.NewResetTokenService("other-secret", 30).Generate("demo@adaptive.game")
		require.NoError(t, err)

		uc := NewResetPasswordUseCase(userRepo, resetRepo, tokens, hasher, sender, log)
		err = uc.Execute(ctx, ResetPasswordCommand{Token: forged, NewPassword: "fresh-password"})

		assert.ErrorIs(t, err, user.ErrResetNotFound)
	})

	t.Run("short password is rejected before token checks", func(t *testing.T) {
		uc := NewResetPasswordUseCase(new(mockUserRepo), new(mockResetRepo), tokens, hasher, new(mockEmailSender), log)
		err := uc.Execute(ctx, ResetPasswordCommand{Token: "irrelevant", NewPassword: "short"})
		assert.ErrorIs(t, err, user.ErrPasswordTooShort)
	})
}
