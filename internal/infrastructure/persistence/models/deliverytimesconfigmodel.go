package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// DeliveryTimesConfigModel holds lead time and variability for one node type
// within one game configuration.
type DeliveryTimesConfigModel struct {
	ID                  uint   `gorm:"primarykey"`
	ConfigurationGameID uint   `gorm:"column:configuration_game_id;not null;index"`
	Time                int    `gorm:"not null;default:0"`
	Variability         int    `gorm:"not null;default:0"`
	NodeType            string `gorm:"not null;size:50"`
	Status              string `gorm:"not null;default:active;size:10"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (DeliveryTimesConfigModel) TableName() string {
	return constants.TableDeliveryTimesConfig
}
