package models

import (
	"time"

	"adaptivegame/internal/shared/constants"
)

// NodeTypeModel is the supply-chain role lookup. Every per-role config row
// references it by name; the node_type columns are true foreign keys, not
// free text.
type NodeTypeModel struct {
	Name        string `gorm:"primarykey;size:50"`
	Description string `gorm:"not null;size:250"`
	Status      string `gorm:"not null;default:active;size:10"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (NodeTypeModel) TableName() string {
	return constants.TableNodeType
}
