package game

import "context"

// Repository provides access to the game configuration cluster.
type Repository interface {
	// List returns all games ordered by start date, newest first.
	List(ctx context.Context) ([]*Game, error)

	// GetByID returns (nil, nil) when no game matches.
	GetByID(ctx context.Context, id uint) (*Game, error)

	// CreateTree persists a whole configuration tree in a single
	// transaction with all-or-nothing commit semantics.
	CreateTree(ctx context.Context, tree *ConfigurationTree) error

	// GetLatestConfiguration returns the most recent active configuration
	// of a game, or (nil, nil) when the game has none.
	GetLatestConfiguration(ctx context.Context, gameID uint) (*Configuration, error)
}

// ReferenceRepository provides the lookup tables the creation form needs.
type ReferenceRepository interface {
	ListNodeTypes(ctx context.Context) ([]*NodeTypeRef, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	ListRowStatuses(ctx context.Context) ([]string, error)
}
