package handlers

import (
	"context"

	"adaptivegame/internal/application/game/dto"
	gameusecases "adaptivegame/internal/application/game/usecases"
	userusecases "adaptivegame/internal/application/user/usecases"
)

// Use case interfaces for the handlers - enables unit testing with mocks.

type loginUseCase interface {
	Execute(ctx context.Context, cmd userusecases.LoginWithPasswordCommand) (*userusecases.LoginWithPasswordResult, error)
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, cmd userusecases.RequestPasswordResetCommand) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd userusecases.ResetPasswordCommand) error
}

type listGamesUseCase interface {
	Execute(ctx context.Context) ([]dto.GameSummary, error)
}

type newGameFormUseCase interface {
	Execute(ctx context.Context) (*gameusecases.NewGameForm, error)
}

type createGameUseCase interface {
	Execute(ctx context.Context, cmd gameusecases.CreateGameCommand) (*dto.CreateGameResult, error)
}

type renderEventMessageUseCase interface {
	Execute(message string) (string, error)
}
