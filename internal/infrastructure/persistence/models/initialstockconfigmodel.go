package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// InitialStockConfigModel holds the starting inventory for one node type
// within one game configuration.
type InitialStockConfigModel struct {
	ID                  uint    `gorm:"primarykey"`
	ConfigurationGameID uint    `gorm:"column:configuration_game_id;not null;index"`
	Stock               float64 `gorm:"not null;default:0"`
	InitialOrder        float64 `gorm:"not null;default:0"`
	NodeType            string  `gorm:"not null;size:50"`
	Status              string  `gorm:"not null;default:active;size:10"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (InitialStockConfigModel) TableName() string {
	return constants.TableInitialStockConfig
}
