package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// ResetPasswordModel records one credential-reset attempt. One email may have
// many rows; only rows with status active are honored.
type ResetPasswordModel struct {
	ID        uint   `gorm:"primarykey"`
	Email     string `gorm:"not null;size:300;index"`
	Hash      string `gorm:"not null;size:255;index"`
	Status    string `gorm:"not null;default:active;size:10"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ResetPasswordModel) TableName() string {
	return constants.TableResetPassword
}
