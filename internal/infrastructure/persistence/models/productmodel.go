package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// ProductModel is the product reference a configuration points at by name.
type ProductModel struct {
	ID          uint    `gorm:"primarykey"`
	Name        string  `gorm:"uniqueIndex;not null;size:20"`
	Description *string `gorm:"type:text"`
	Icon        string  `gorm:"not null;size:250"`
	Status      string  `gorm:"not null;default:active;size:10"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProduct
}
