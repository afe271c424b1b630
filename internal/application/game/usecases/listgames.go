package usecases

import (
	"context"
	"fmt"

	"adaptivegame/internal/application/game/dto"
	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/shared/logger"
)

// ListGamesUseCase backs the dashboard table: every game, newest start date
// first, each annotated with its latest active configuration if one exists.
type ListGamesUseCase struct {
	gameRepo game.Repository
	logger   logger.Interface
}

func NewListGamesUseCase(gameRepo game.Repository, logger logger.Interface) *ListGamesUseCase {
	return &ListGamesUseCase{
		gameRepo: gameRepo,
		logger:   logger,
	}
}

func (uc *ListGamesUseCase) Execute(ctx context.Context) ([]dto.GameSummary, error) {
	games, err := uc.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	summaries := make([]dto.GameSummary, 0, len(games))
	for _, g := range games {
		summary := dto.GameSummary{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			StartDate:   g.StartDate,
			EndDate:     g.EndDate,
			Status:      g.Status,
		}

		cfg, err := uc.gameRepo.GetLatestConfiguration(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration for game %d: %w", g.ID, err)
		}
		if cfg != nil {
			summary.Periods = cfg.Periods
			summary.PeriodType = cfg.PeriodType.String()
			summary.Product = cfg.Product
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
