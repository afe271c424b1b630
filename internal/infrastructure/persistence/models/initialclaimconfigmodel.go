package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// InitialClaimConfigModel is one demand value for one period. The creation
// form's demand-by-period matrix persists here, one row per period.
type InitialClaimConfigModel struct {
	ID                  uint    `gorm:"primarykey"`
	ConfigurationGameID uint    `gorm:"column:configuration_game_id;not null;index"`
	PeriodNumber        int     `gorm:"not null"`
	ClaimValue          float64 `gorm:"not null;default:0"`
	Status              string  `gorm:"not null;default:active;size:10"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (InitialClaimConfigModel) TableName() string {
	return constants.TableInitialClaimConfig
}
