package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// StockNotificationConfigModel is the low-stock alert text for one node type
// within one game configuration.
type StockNotificationConfigModel struct {
	ID                  uint   `gorm:"primarykey"`
	ConfigurationGameID uint   `gorm:"column:configuration_game_id;not null;index"`
	NodeType            string `gorm:"not null;size:50"`
	Message             string `gorm:"size:350"`
	Status              string `gorm:"not null;default:active;size:10"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (StockNotificationConfigModel) TableName() string {
	return constants.TableStockNotificationConfig
}
