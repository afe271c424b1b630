package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// GameConfigurationModel is the parameter root every config sub-table hangs
// from. A game may carry several rows; readers use the latest active one.
type GameConfigurationModel struct {
	ID           uint    `gorm:"primarykey"`
	GameID       uint    `gorm:"not null;index"`
	BusinessName *string `gorm:"size:50"`
	Periods      int     `gorm:"not null"`
	PeriodType   string  `gorm:"not null;size:10"`
	Product      string  `gorm:"not null;size:20"`
	Status       string  `gorm:"not null;default:active;size:10"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (GameConfigurationModel) TableName() string {
	return constants.TableGameConfiguration
}
