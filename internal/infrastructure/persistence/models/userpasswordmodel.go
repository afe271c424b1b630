package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// UserPasswordModel is the secondary credential record, one-to-many from a
// user. Rows cascade when their user is deleted.
type UserPasswordModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	Pwd       string `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserPasswordModel) TableName() string {
	return constants.TableUserPws
}
