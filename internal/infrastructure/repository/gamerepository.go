package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/infrastructure/persistence/mappers"
	"adaptivegame/internal/infrastructure/persistence/models"
	"adaptivegame/internal/shared/constants"
	"adaptivegame/internal/shared/logger"
)

// GameRepository implements the game repository interface on gorm
type GameRepository struct {
	db     *gorm.DB
	mapper mappers.GameMapper
	logger logger.Interface
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB, logger logger.Interface) game.Repository {
	return &GameRepository{
		db:     db,
		mapper: mappers.NewGameMapper(),
		logger: logger,
	}
}

// List returns all games ordered by start date, newest first
func (r *GameRepository) List(ctx context.Context) ([]*game.Game, error) {
	var gameModels []*models.GameModel

	err := r.db.WithContext(ctx).
		Where("status <> ?", constants.RowStatusDeleted).
		Order("start_date DESC").
		Find(&gameModels).Error
	if err != nil {
		r.logger.Errorw("failed to list games", "error", err)
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return r.mapper.ToGameEntities(gameModels), nil
}

// GetByID returns (nil, nil) when no game matches
func (r *GameRepository) GetByID(ctx context.Context, id uint) (*game.Game, error) {
	var model models.GameModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get game by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return r.mapper.ToGameEntity(&model), nil
}

// CreateTree persists a whole configuration tree in a single transaction.
// Either every row of the tree lands or none of them do.
func (r *GameRepository) CreateTree(ctx context.Context, tree *game.ConfigurationTree) error {
	if err := tree.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gameModel := r.mapper.ToGameModel(&tree.Game)
		if err := tx.Create(gameModel).Error; err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}

		cfgModel := r.mapper.ToConfigurationModel(&tree.Configuration)
		cfgModel.GameID = gameModel.ID
		if err := tx.Create(cfgModel).Error; err != nil {
			return fmt.Errorf("failed to create game configuration: %w", err)
		}

		rows := mappers.ToTreeRows(tree, cfgModel.ID)

		if len(rows.Costs) > 0 {
			if err := tx.Create(&rows.Costs).Error; err != nil {
				return fmt.Errorf("failed to create costs price rows: %w", err)
			}
		}
		if len(rows.DeliveryTimes) > 0 {
			if err := tx.Create(&rows.DeliveryTimes).Error; err != nil {
				return fmt.Errorf("failed to create delivery times rows: %w", err)
			}
		}
		if len(rows.EventMessages) > 0 {
			if err := tx.Create(&rows.EventMessages).Error; err != nil {
				return fmt.Errorf("failed to create event message rows: %w", err)
			}
		}
		if len(rows.InitialClaims) > 0 {
			if err := tx.Create(&rows.InitialClaims).Error; err != nil {
				return fmt.Errorf("failed to create initial claim rows: %w", err)
			}
		}
		if len(rows.InitialStocks) > 0 {
			if err := tx.Create(&rows.InitialStocks).Error; err != nil {
				return fmt.Errorf("failed to create initial stock rows: %w", err)
			}
		}
		if len(rows.OrderRestrictions) > 0 {
			if err := tx.Create(&rows.OrderRestrictions).Error; err != nil {
				return fmt.Errorf("failed to create order restriction rows: %w", err)
			}
		}
		if len(rows.StockNotifications) > 0 {
			if err := tx.Create(&rows.StockNotifications).Error; err != nil {
				return fmt.Errorf("failed to create stock notification rows: %w", err)
			}
		}

		tree.Game.ID = gameModel.ID
		tree.Configuration.ID = cfgModel.ID
		tree.Configuration.GameID = gameModel.ID
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to create configuration tree", "game_name", tree.Game.Name, "error", err)
		return err
	}

	r.logger.Infow("configuration tree created",
		"game_id", tree.Game.ID,
		"configuration_id", tree.Configuration.ID,
		"periods", tree.Configuration.Periods)
	return nil
}

// GetLatestConfiguration returns the most recent active configuration of a
// game, or (nil, nil) when the game has none
func (r *GameRepository) GetLatestConfiguration(ctx context.Context, gameID uint) (*game.Configuration, error) {
	var model models.GameConfigurationModel

	err := r.db.WithContext(ctx).
		Where("game_id = ? AND status = ?", gameID, constants.RowStatusActive).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get latest configuration", "game_id", gameID, "error", err)
		return nil, fmt.Errorf("failed to get latest configuration: %w", err)
	}

	return r.mapper.ToConfigurationEntity(&model), nil
}
