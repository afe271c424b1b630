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

// ReferenceRepository serves the lookup tables the creation form renders.
type ReferenceRepository struct {
	db     *gorm.DB
	mapper mappers.GameMapper
	logger logger.Interface
}

// NewReferenceRepository creates a new reference repository
func NewReferenceRepository(db *gorm.DB, logger logger.Interface) game.ReferenceRepository {
	return &ReferenceRepository{
		db:     db,
		mapper: mappers.NewGameMapper(),
		logger: logger,
	}
}

// ListNodeTypes returns the active node type lookup rows
func (r *ReferenceRepository) ListNodeTypes(ctx context.Context) ([]*game.NodeTypeRef, error) {
	var nodeModels []*models.NodeTypeModel

	err := r.db.WithContext(ctx).
		Where("status = ?", constants.RowStatusActive).
		Order("name").
		Find(&nodeModels).Error
	if err != nil {
		r.logger.Errorw("failed to list node types", "error", err)
		return nil, fmt.Errorf("failed to list node types: %w", err)
	}

	refs := make([]*game.NodeTypeRef, 0, len(nodeModels))
	for _, model := range nodeModels {
		refs = append(refs, r.mapper.ToNodeTypeEntity(model))
	}
	return refs, nil
}

// ListProducts returns the active products
func (r *ReferenceRepository) ListProducts(ctx context.Context) ([]*game.Product, error) {
	var productModels []*models.ProductModel

	err := r.db.WithContext(ctx).
		Where("status = ?", constants.RowStatusActive).
		Order("name").
		Find(&productModels).Error
	if err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*game.Product, 0, len(productModels))
	for _, model := range productModels {
		products = append(products, r.mapper.ToProductEntity(model))
	}
	return products, nil
}

// ListRowStatuses returns every known row lifecycle status
func (r *ReferenceRepository) ListRowStatuses(ctx context.Context) ([]string, error) {
	var statusModels []*models.RowStatusModel

	if err := r.db.WithContext(ctx).Order("status").Find(&statusModels).Error; err != nil {
		r.logger.Errorw("failed to list row statuses", "error", err)
		return nil, fmt.Errorf("failed to list row statuses: %w", err)
	}

	statuses := make([]string, 0, len(statusModels))
	for _, model := range statusModels {
		statuses = append(statuses, model.Status)
	}
	return statuses, nil
}
