package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// OrderRestrictionConfigModel bounds the orders one node type may place
// within one game configuration.
type OrderRestrictionConfigModel struct {
	ID                  uint   `gorm:"primarykey"`
	ConfigurationGameID uint   `gorm:"column:configuration_game_id;not null;index"`
	Minimum             int    `gorm:"not null;default:0"`
	Maximum             int    `gorm:"not null;default:0"`
	BatchSize           int    `gorm:"not null;default:0"`
	NodeType            string `gorm:"not null;size:50"`
	Status              string `gorm:"not null;default:active;size:10"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (OrderRestrictionConfigModel) TableName() string {
	return constants.TableOrderRestrictionConfig
}
