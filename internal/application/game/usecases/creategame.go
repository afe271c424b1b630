package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"adaptivegame/internal/application/game/dto"
	"adaptivegame/internal/application/game/formstate"
	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/shared/logger"
)

// ValidationError carries the field-scoped messages a rejected submission
// renders next to its inputs.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

type CreateGameCommand struct {
	Form               formstate.State
	OrderRestrictions  []dto.OrderRestrictionInput
	EventMessages      []dto.EventMessageInput
	StockNotifications []dto.StockNotificationInput
}

// CreateGameUseCase turns a validated form submission into a configuration
// tree and persists it atomically. The per-node rows come from the form's
// category values; the per-period initial-claim rows come from the demand
// matrix, zero-filled for periods without an entry.
type CreateGameUseCase struct {
	gameRepo game.Repository
	logger   logger.Interface
}

func NewCreateGameUseCase(gameRepo game.Repository, logger logger.Interface) *CreateGameUseCase {
	return &CreateGameUseCase{
		gameRepo: gameRepo,
		logger:   logger,
	}
}

func (uc *CreateGameUseCase) Execute(ctx context.Context, cmd CreateGameCommand) (*dto.CreateGameResult, error) {
	form := cmd.Form
	form.Normalize()

	if fields := form.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	start, end := form.Dates()

	tree := &game.ConfigurationTree{
		Game: game.Game{
			Name:        form.GameName,
			Description: form.GameDescription,
			StartDate:   start,
			EndDate:     end,
		},
		Configuration: game.Configuration{
			BusinessName: form.BusinessName,
			Periods:      form.Periods,
			PeriodType:   form.PeriodType,
			Product:      form.Product,
		},
	}

	for _, nt := range game.AllNodeTypes() {
		tree.Costs = append(tree.Costs, game.CostsPrice{
			StockCost:        form.Costs.StockCost,
			CostPendingOrder: form.Costs.CostPendingOrder,
			PurchaseCost:     form.Costs.PurchaseCost,
			SalePrice:        form.Costs.SalePrice,
			NodeType:         nt,
		})

		tree.DeliveryTimes = append(tree.DeliveryTimes, game.DeliveryTimes{
			Time:        int(form.NodeValue(formstate.CategoryLeadTime, nt)),
			Variability: int(form.NodeValue(formstate.CategoryLeadTimeVariability, nt)),
			NodeType:    nt,
		})

		tree.InitialStocks = append(tree.InitialStocks, game.InitialStock{
			Stock:        form.NodeValue(formstate.CategoryInitialStock, nt),
			InitialOrder: form.NodeValue(formstate.CategoryInitialBackorder, nt),
			NodeType:     nt,
		})
	}

	for _, r := range cmd.OrderRestrictions {
		tree.OrderRestrictions = append(tree.OrderRestrictions, game.OrderRestriction{
			Minimum:   r.Minimum,
			Maximum:   r.Maximum,
			BatchSize: r.BatchSize,
			NodeType:  r.NodeType,
		})
	}

	for _, e := range cmd.EventMessages {
		tree.EventMessages = append(tree.EventMessages, game.EventMessage{
			NodeType: e.NodeType,
			Message:  e.Message,
			Period:   e.Period,
		})
	}

	for _, n := range cmd.StockNotifications {
		tree.StockNotifications = append(tree.StockNotifications, game.StockNotification{
			NodeType: n.NodeType,
			Message:  n.Message,
		})
	}

	for period := 1; period <= form.Periods; period++ {
		tree.InitialClaims = append(tree.InitialClaims, game.InitialClaim{
			PeriodNumber: period,
			ClaimValue:   form.DemandAt(period),
		})
	}

	if err := uc.gameRepo.CreateTree(ctx, tree); err != nil {
		uc.logger.Errorw("failed to create game", "name", form.GameName, "error", err)
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	uc.logger.Infow("game created",
		"game_id", tree.Game.ID,
		"configuration_id", tree.Configuration.ID,
		"periods", form.Periods)

	return &dto.CreateGameResult{
		GameID:          tree.Game.ID,
		ConfigurationID: tree.Configuration.ID,
	}, nil
}
