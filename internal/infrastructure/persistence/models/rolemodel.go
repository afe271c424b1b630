package models

import "adaptivegame/internal/shared/constants"

// RoleModel is the static role lookup.
type RoleModel struct {
	Rol         string  `gorm:"primarykey;size:20"`
	Description *string `gorm:"size:100"`
}

func (RoleModel) TableName() string {
	return constants.TableRol
}
