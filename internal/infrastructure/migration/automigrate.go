package migration

import (
	"adaptivegame/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order, so
// lookup tables exist before the rows that reference them.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RowStatusModel{},
		&models.RoleModel{},
		&models.NodeTypeModel{},
		&models.ProductModel{},
		&models.UserModel{},
		&models.UserPasswordModel{},
		&models.ResetPasswordModel{},
		&models.GameModel{},
		&models.GameConfigurationModel{},
		&models.OwnerModel{},
		&models.CostsPriceConfigModel{},
		&models.DeliveryTimesConfigModel{},
		&models.EventsMessageConfigModel{},
		&models.InitialClaimConfigModel{},
		&models.InitialStockConfigModel{},
		&models.OrderRestrictionConfigModel{},
		&models.StockNotificationConfigModel{},
	}
}
