package models

import "adaptivegame/internal/shared/constants"

// RowStatusModel enumerates the lifecycle states shared by nearly every
// business table. Rows are never physically deleted; status moves to a
// terminal value instead.
type RowStatusModel struct {
	Status string `gorm:"primarykey;size:10"`
}

func (RowStatusModel) TableName() string {
	return constants.TableRowStatus
}
