package usecases

import (
	"context"
	"fmt"

	"adaptivegame/internal/application/game/dto"
	"adaptivegame/internal/application/game/formstate"
	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/shared/logger"
)

// NewGameForm is everything the creation page needs on first render: a state
// holding the declared defaults plus the lookup options.
type NewGameForm struct {
	State     *formstate.State     `json:"state"`
	NodeTypes []dto.NodeTypeOption `json:"node_types"`
	Products  []dto.ProductOption  `json:"products"`
}

type GetNewGameFormUseCase struct {
	refRepo game.ReferenceRepository
	logger  logger.Interface
}

func NewGetNewGameFormUseCase(refRepo game.ReferenceRepository, logger logger.Interface) *GetNewGameFormUseCase {
	return &GetNewGameFormUseCase{
		refRepo: refRepo,
		logger:  logger,
	}
}

func (uc *GetNewGameFormUseCase) Execute(ctx context.Context) (*NewGameForm, error) {
	nodeTypes, err := uc.refRepo.ListNodeTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list node types: %w", err)
	}

	products, err := uc.refRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	form := &NewGameForm{State: formstate.New()}
	for _, nt := range nodeTypes {
		form.NodeTypes = append(form.NodeTypes, dto.NodeTypeOption{
			Name:        nt.Name,
			Description: nt.Description,
		})
	}
	for _, p := range products {
		form.Products = append(form.Products, dto.ProductOption{
			Name: p.Name,
			Icon: p.Icon,
		})
	}

	return form, nil
}
