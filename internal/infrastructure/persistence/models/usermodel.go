package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// UserModel is the persistence model for identity records.
type UserModel struct {
	ID           uint    `gorm:"primarykey"`
	Name         string  `gorm:"not null;size:100"`
	Lastname     string  `gorm:"not null;size:200"`
	Email        string  `gorm:"uniqueIndex;not null;size:300"`
	DNINumber    *string `gorm:"column:dni_number;uniqueIndex;size:30"`
	Rol          string  `gorm:"not null;size:20"`
	PasswordHash *string `gorm:"size:255"`
	Status       string  `gorm:"not null;default:active;size:10"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUser
}
