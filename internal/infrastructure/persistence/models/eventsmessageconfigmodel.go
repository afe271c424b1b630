package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// EventsMessageConfigModel is a message shown to one node type at a given
// period of the simulation.
type EventsMessageConfigModel struct {
	ID                  uint   `gorm:"primarykey"`
	ConfigurationGameID uint   `gorm:"column:configuration_game_id;not null;index"`
	NodeType            string `gorm:"not null;size:50"`
	Message             string `gorm:"size:350"`
	Period              int    `gorm:"not null;default:0"`
	Status              string `gorm:"not null;default:active;size:10"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (EventsMessageConfigModel) TableName() string {
	return constants.TableEventsMessageConfig
}
