package mappers

import (
	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/infrastructure/persistence/models"
)

// GameMapper converts the game configuration cluster between domain entities
// and persistence models.
type GameMapper interface {
	ToGameEntity(model *models.GameModel) *game.Game
	ToGameModel(entity *game.Game) *models.GameModel
	ToGameEntities(models []*models.GameModel) []*game.Game

	ToConfigurationEntity(model *models.GameConfigurationModel) *game.Configuration
	ToConfigurationModel(entity *game.Configuration) *models.GameConfigurationModel

	ToProductEntity(model *models.ProductModel) *game.Product
	ToNodeTypeEntity(model *models.NodeTypeModel) *game.NodeTypeRef
	ToOwnerModel(entity *game.Owner) *models.OwnerModel
}

type gameMapper struct{}

// NewGameMapper creates a new game mapper
func NewGameMapper() GameMapper {
	return &gameMapper{}
}

func (m *gameMapper) ToGameEntity(model *models.GameModel) *game.Game {
	if model == nil {
		return nil
	}
	return &game.Game{
		ID:          model.ID,
		Name:        model.Name,
		Description: deref(model.Description),
		StartDate:   model.StartDate,
		EndDate:     model.EndDate,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *gameMapper) ToGameModel(entity *game.Game) *models.GameModel {
	if entity == nil {
		return nil
	}
	return &models.GameModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: ptr(entity.Description),
		StartDate:   entity.StartDate,
		EndDate:     entity.EndDate,
		Status:      entity.Status,
	}
}

func (m *gameMapper) ToGameEntities(gameModels []*models.GameModel) []*game.Game {
	entities := make([]*game.Game, 0, len(gameModels))
	for _, model := range gameModels {
		entities = append(entities, m.ToGameEntity(model))
	}
	return entities
}

func (m *gameMapper) ToConfigurationEntity(model *models.GameConfigurationModel) *game.Configuration {
	if model == nil {
		return nil
	}
	return &game.Configuration{
		ID:           model.ID,
		GameID:       model.GameID,
		BusinessName: deref(model.BusinessName),
		Periods:      model.Periods,
		PeriodType:   game.PeriodUnit(model.PeriodType),
		Product:      model.Product,
		Status:       model.Status,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *gameMapper) ToConfigurationModel(entity *game.Configuration) *models.GameConfigurationModel {
	if entity == nil {
		return nil
	}
	return &models.GameConfigurationModel{
		ID:           entity.ID,
		GameID:       entity.GameID,
		BusinessName: ptr(entity.BusinessName),
		Periods:      entity.Periods,
		PeriodType:   entity.PeriodType.String(),
		Product:      entity.Product,
		Status:       entity.Status,
	}
}

func (m *gameMapper) ToProductEntity(model *models.ProductModel) *game.Product {
	if model == nil {
		return nil
	}
	return &game.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: deref(model.Description),
		Icon:        model.Icon,
		Status:      model.Status,
	}
}

func (m *gameMapper) ToNodeTypeEntity(model *models.NodeTypeModel) *game.NodeTypeRef {
	if model == nil {
		return nil
	}
	return &game.NodeTypeRef{
		Name:        model.Name,
		Description: model.Description,
		Status:      model.Status,
	}
}

func (m *gameMapper) ToOwnerModel(entity *game.Owner) *models.OwnerModel {
	if entity == nil {
		return nil
	}
	return &models.OwnerModel{
		ID:          entity.ID,
		GameID:      entity.GameID,
		Name:        entity.Name,
		Lastname:    entity.Lastname,
		DNINumber:   entity.DNINumber,
		Email:       entity.Email,
		Phone:       ptr(entity.Phone),
		CompanyName: ptr(entity.CompanyName),
		NodeType:    entity.NodeType.String(),
		Status:      entity.Status,
	}
}
