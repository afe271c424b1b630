package mappers

import (
	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/infrastructure/persistence/models"
)

// TreeRows is the flattened model form of a configuration tree, ready to be
// inserted once the parent configuration row has its ID.
type TreeRows struct {
	Costs              []models.CostsPriceConfigModel
	DeliveryTimes      []models.DeliveryTimesConfigModel
	EventMessages      []models.EventsMessageConfigModel
	InitialClaims      []models.InitialClaimConfigModel
	InitialStocks      []models.InitialStockConfigModel
	OrderRestrictions  []models.OrderRestrictionConfigModel
	StockNotifications []models.StockNotificationConfigModel
}

// ToTreeRows converts every sub-table entity of the tree, stamping each row
// with the configuration ID assigned at insert time.
func ToTreeRows(tree *game.ConfigurationTree, configurationID uint) TreeRows {
	rows := TreeRows{}

	for _, c := range tree.Costs {
		rows.Costs = append(rows.Costs, models.CostsPriceConfigModel{
			ConfigurationGameID: configurationID,
			StockCost:           c.StockCost,
			CostPendingOrder:    c.CostPendingOrder,
			PurchaseCost:        c.PurchaseCost,
			SalePrice:           c.SalePrice,
			NodeType:            c.NodeType.String(),
		})
	}

	for _, d := range tree.DeliveryTimes {
		rows.DeliveryTimes = append(rows.DeliveryTimes, models.DeliveryTimesConfigModel{
			ConfigurationGameID: configurationID,
			Time:                d.Time,
			Variability:         d.Variability,
			NodeType:            d.NodeType.String(),
		})
	}

	for _, e := range tree.EventMessages {
		rows.EventMessages = append(rows.EventMessages, models.EventsMessageConfigModel{
			ConfigurationGameID: configurationID,
			NodeType:            e.NodeType.String(),
			Message:             e.Message,
			Period:              e.Period,
		})
	}

	for _, claim := range tree.InitialClaims {
		rows.InitialClaims = append(rows.InitialClaims, models.InitialClaimConfigModel{
			ConfigurationGameID: configurationID,
			PeriodNumber:        claim.PeriodNumber,
			ClaimValue:          claim.ClaimValue,
		})
	}

	for _, s := range tree.InitialStocks {
		rows.InitialStocks = append(rows.InitialStocks, models.InitialStockConfigModel{
			ConfigurationGameID: configurationID,
			Stock:               s.Stock,
			InitialOrder:        s.InitialOrder,
			NodeType:            s.NodeType.String(),
		})
	}

	for _, o := range tree.OrderRestrictions {
		rows.OrderRestrictions = append(rows.OrderRestrictions, models.OrderRestrictionConfigModel{
			ConfigurationGameID: configurationID,
			Minimum:             o.Minimum,
			Maximum:             o.Maximum,
			BatchSize:           o.BatchSize,
			NodeType:            o.NodeType.String(),
		})
	}

	for _, n := range tree.StockNotifications {
		rows.StockNotifications = append(rows.StockNotifications, models.StockNotificationConfigModel{
			ConfigurationGameID: configurationID,
			NodeType:            n.NodeType.String(),
			Message:             n.Message,
		})
	}

	return rows
}
