package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// CostsPriceConfigModel holds the cost and price parameters for one node
// type within one game configuration.
type CostsPriceConfigModel struct {
	ID                  uint    `gorm:"primarykey"`
	ConfigurationGameID uint    `gorm:"column:configuration_game_id;not null;index"`
	StockCost           float64 `gorm:"not null;default:0"`
	CostPendingOrder    float64 `gorm:"not null;default:0"`
	PurchaseCost        float64 `gorm:"not null;default:0"`
	SalePrice           float64 `gorm:"not null;default:0"`
	NodeType            string  `gorm:"not null;size:50"`
	Status              string  `gorm:"not null;default:active;size:10"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (CostsPriceConfigModel) TableName() string {
	return constants.TableCostsPriceConfig
}
