// Package dto carries the payload shapes the game handlers exchange with the
// application layer.
package dto

import (
	"time"

	"adaptivegame/internal/domain/game"
)

// GameSummary is one row of the dashboard table.
type GameSummary struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	Periods     int       `json:"periods,omitempty"`
	PeriodType  string    `json:"period_type,omitempty"`
	Product     string    `json:"product,omitempty"`
}

// NodeTypeOption is one entry of the form's node-type selector.
type NodeTypeOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductOption is one entry of the form's product selector.
type ProductOption struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// OrderRestrictionInput bounds the orders one node type may place.
type OrderRestrictionInput struct {
	NodeType  game.NodeType `json:"node_type"`
	Minimum   int           `json:"minimum"`
	Maximum   int           `json:"maximum"`
	BatchSize int           `json:"batch_size"`
}

// EventMessageInput is one authored in-game event notice.
type EventMessageInput struct {
	NodeType game.NodeType `json:"node_type"`
	Message  string        `json:"message"`
	Period   int           `json:"period"`
}

// StockNotificationInput is one authored low-stock alert text.
type StockNotificationInput struct {
	NodeType game.NodeType `json:"node_type"`
	Message  string        `json:"message"`
}

// CreateGameResult reports the IDs the transaction assigned.
type CreateGameResult struct {
	GameID          uint `json:"game_id"`
	ConfigurationID uint `json:"configuration_id"`
}
