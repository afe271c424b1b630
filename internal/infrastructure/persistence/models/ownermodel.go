package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// OwnerModel is the person running one node of a game.
type OwnerModel struct {
	ID          uint    `gorm:"primarykey"`
	GameID      uint    `gorm:"not null;index"`
	Name        string  `gorm:"not null;size:50"`
	Lastname    string  `gorm:"not null;size:100"`
	DNINumber   string  `gorm:"column:dni_number;uniqueIndex;not null;size:30"`
	Email       string  `gorm:"uniqueIndex;not null;size:300"`
	Phone       *string `gorm:"size:15"`
	CompanyName *string `gorm:"size:150"`
	NodeType    string  `gorm:"not null;size:50"`
	Status      string  `gorm:"not null;default:active;size:10"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (OwnerModel) TableName() string {
	return constants.TableOwner
}
