package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// GameModel is the root aggregate row for one simulation campaign.
type GameModel struct {
	ID          uint    `gorm:"primarykey"`
	Name        string  `gorm:"not null;size:100"`
	Description *string `gorm:"type:text"`
	StartDate   time.Time
	EndDate     time.Time
	Status      string `gorm:"not null;default:active;size:10"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (GameModel) TableName() string {
	return constants.TableGame
}
