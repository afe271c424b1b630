package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/infrastructure/migration"
	"adaptivegame/internal/infrastructure/persistence/models"
	"adaptivegame/internal/infrastructure/persistence/seeds"
	"adaptivegame/internal/shared/authorization"
	"adaptivegame/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(migration.AutoMigrateModels()...)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLogger().With("component", "repository.test")
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	t.Run("create and get by email", func(t *testing.T) {
		u := &user.User{
			Name:         "Ada",
			Lastname:     "Lovelace",
			Email:        "ada@adaptive.game",
			Role:         authorization.RoleAdmin,
			Status:       "active",
			PasswordHash: "$2a$10$hash",
		}
		require.NoError(t, repo.Create(ctx, u))
		assert.NotZero(t, u.ID)

		found, err := repo.GetByEmail(ctx, "  ADA@Adaptive.Game ")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID, found.ID)
		assert.Equal(t, "ada@adaptive.game", found.Email)
		assert.Equal(t, authorization.RoleAdmin, found.Role)
		assert.Equal(t, "$2a$10$hash", found.PasswordHash)
	})

	t.Run("missing email returns nil without error", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@adaptive.game")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("missing id returns nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("update password hash", func(t *testing.T) {
		u := &user.User{
			Name:   "Grace",
			Email:  "grace@adaptive.game",
			Role:   authorization.RoleAdmin,
			Status: "active",
		}
		require.NoError(t, repo.Create(ctx, u))

		require.NoError(t, repo.UpdatePasswordHash(ctx, u.ID, "$2a$10$new"))

		found, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$new", found.PasswordHash)
	})

	t.Run("update password hash on missing user", func(t *testing.T) {
		err := repo.UpdatePasswordHash(ctx, 9999, "$2a$10$new")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestCredentialResetRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialResetRepository(db, testLogger())
	ctx := context.Background()

	reset := &user.CredentialReset{
		Email:  "demo@adaptive.game",
		Hash:   "token-hash-1",
		Status: "active",
	}
	require.NoError(t, repo.Create(ctx, reset))
	require.NotZero(t, reset.ID)

	t.Run("active hash is found", func(t *testing.T) {
		found, err := repo.GetActiveByHash(ctx, "token-hash-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, reset.ID, found.ID)
		assert.Equal(t, "demo@adaptive.game", found.Email)
	})

	t.Run("unknown hash returns nil without error", func(t *testing.T) {
		found, err := repo.GetActiveByHash(ctx, "never-issued")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("consumed hash is no longer honored", func(t *testing.T) {
		require.NoError(t, repo.MarkUsed(ctx, reset.ID))

		found, err := repo.GetActiveByHash(ctx, "token-hash-1")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("mark used on missing row", func(t *testing.T) {
		err := repo.MarkUsed(ctx, 9999)
		assert.ErrorIs(t, err, user.ErrResetNotFound)
	})
}

func buildTestTree(name string, start time.Time, periods int) *game.ConfigurationTree {
	tree := &game.ConfigurationTree{
		Game: game.Game{
			Name:      name,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 7*periods),
		},
		Configuration: game.Configuration{
			BusinessName: name + " Co.",
			Periods:      periods,
			PeriodType:   game.PeriodWeeks,
			Product:      "beer",
		},
	}

	for _, nt := range game.AllNodeTypes() {
		tree.Costs = append(tree.Costs, game.CostsPrice{
			StockCost: 0.5, CostPendingOrder: 1, PurchaseCost: 2, SalePrice: 4, NodeType: nt,
		})
		tree.DeliveryTimes = append(tree.DeliveryTimes, game.DeliveryTimes{
			Time: 2, Variability: 1, NodeType: nt,
		})
		tree.InitialStocks = append(tree.InitialStocks, game.InitialStock{
			Stock: 12, InitialOrder: 4, NodeType: nt,
		})
		tree.OrderRestrictions = append(tree.OrderRestrictions, game.OrderRestriction{
			Minimum: 0, Maximum: 100, BatchSize: 1, NodeType: nt,
		})
	}

	for p := 1; p <= periods; p++ {
		tree.InitialClaims = append(tree.InitialClaims, game.InitialClaim{
			PeriodNumber: p,
			ClaimValue:   float64(p * 10),
		})
	}

	tree.EventMessages = append(tree.EventMessages, game.EventMessage{
		NodeType: game.NodeRetail, Message: "demand spike ahead", Period: 2,
	})
	tree.StockNotifications = append(tree.StockNotifications, game.StockNotification{
		NodeType: game.NodeRetail, Message: "stock running low",
	})

	return tree
}

func TestGameRepository_CreateTree(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, testLogger())
	ctx := context.Background()

	t.Run("persists the whole tree", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		tree := buildTestTree("Spring League", start, 4)

		require.NoError(t, repo.CreateTree(ctx, tree))
		assert.NotZero(t, tree.Game.ID)
		assert.NotZero(t, tree.Configuration.ID)
		assert.Equal(t, tree.Game.ID, tree.Configuration.GameID)

		var claimCount, costCount int64
		require.NoError(t, db.Model(&models.InitialClaimConfigModel{}).
			Where("configuration_game_id = ?", tree.Configuration.ID).
			Count(&claimCount).Error)
		require.NoError(t, db.Model(&models.CostsPriceConfigModel{}).
			Where("configuration_game_id = ?", tree.Configuration.ID).
			Count(&costCount).Error)
		assert.EqualValues(t, 4, claimCount)
		assert.EqualValues(t, 4, costCount)

		cfg, err := repo.GetLatestConfiguration(ctx, tree.Game.ID)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, 4, cfg.Periods)
		assert.Equal(t, game.PeriodWeeks, cfg.PeriodType)
		assert.Equal(t, "Spring League Co.", cfg.BusinessName)
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		tree := buildTestTree("Backwards", start, 2)
		tree.Game.EndDate = start.AddDate(0, 0, -1)

		err := repo.CreateTree(ctx, tree)
		assert.ErrorIs(t, err, game.ErrEndBeforeStart)

		var count int64
		require.NoError(t, db.Model(&models.GameModel{}).
			Where("name = ?", "Backwards").
			Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("rejects claim beyond the period count", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		tree := buildTestTree("Overflow", start, 3)
		tree.InitialClaims = append(tree.InitialClaims, game.InitialClaim{
			PeriodNumber: 4,
			ClaimValue:   99,
		})

		err := repo.CreateTree(ctx, tree)
		assert.ErrorIs(t, err, game.ErrClaimPeriodOutOfRange)
	})

	t.Run("list orders by start date, newest first", func(t *testing.T) {
		older := buildTestTree("Older Game", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 2)
		newer := buildTestTree("Newer Game", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 2)
		require.NoError(t, repo.CreateTree(ctx, older))
		require.NoError(t, repo.CreateTree(ctx, newer))

		games, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(games), 2)
		assert.Equal(t, "Newer Game", games[0].Name)
	})

	t.Run("missing game returns nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestReferenceRepository(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, seeds.Apply(db))
	repo := NewReferenceRepository(db, testLogger())
	ctx := context.Background()

	t.Run("node types", func(t *testing.T) {
		refs, err := repo.ListNodeTypes(ctx)
		require.NoError(t, err)
		require.Len(t, refs, 4)

		names := make([]string, 0, len(refs))
		for _, ref := range refs {
			names = append(names, ref.Name)
		}
		assert.ElementsMatch(t, []string{"manufacturer", "distributor", "wholesaler", "retail"}, names)
	})

	t.Run("products", func(t *testing.T) {
		products, err := repo.ListProducts(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, products)
		assert.Equal(t, "beer", products[0].Name)
	})

	t.Run("row statuses", func(t *testing.T) {
		statuses, err := repo.ListRowStatuses(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"active", "inactive", "deleted"}, statuses)
	})
}

func TestSeedsApplyIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, seeds.Apply(db))

	countAll := func() map[string]int64 {
		counts := make(map[string]int64)
		for name, model := range map[string]interface{}{
			"row_status": &models.RowStatusModel{},
			"rol":        &models.RoleModel{},
			"node_type":  &models.NodeTypeModel{},
			"product":    &models.ProductModel{},
			"user":       &models.UserModel{},
		} {
			var n int64
			require.NoError(t, db.Model(model).Count(&n).Error)
			counts[name] = n
		}
		return counts
	}

	first := countAll()
	require.NoError(t, seeds.Apply(db))
	second := countAll()

	assert.Equal(t, first, second)
	assert.Equal(t, int64(4), second["node_type"])
	assert.Equal(t, int64(3), second["row_status"])
}
