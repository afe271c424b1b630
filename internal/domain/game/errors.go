package game

import "errors"

var (
	ErrGameNameRequired      = errors.New("game name is required")
	ErrEndBeforeStart        = errors.New("end date must not precede start date")
	ErrPeriodsOutOfRange     = errors.New("periods must be between 1 and 20")
	ErrInvalidPeriodUnit     = errors.New("period unit must be weeks, days or hours")
	ErrProductRequired       = errors.New("product is required")
	ErrInvalidNodeType       = errors.New("unknown node type")
	ErrClaimPeriodOutOfRange = errors.New("claim period outside configured range")
	ErrGameNotFound          = errors.New("game not found")
)
