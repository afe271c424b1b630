package game

import "time"

// Game is the root aggregate for one simulation campaign.
type Game struct {
	ID          uint
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate enforces the aggregate invariants before persistence.
func (g *Game) Validate() error {
	if g.Name == "" {
		return ErrGameNameRequired
	}
	if g.EndDate.Before(g.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// Configuration is the parameter root for one Game's simulation run.
type Configuration struct {
	ID           uint
	GameID       uint
	BusinessName string
	Periods      int
	PeriodType   PeriodUnit
	Product      string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *Configuration) Validate() error {
	if c.Periods < MinPeriods || c.Periods > MaxPeriods {
		return ErrPeriodsOutOfRange
	}
	if !c.PeriodType.IsValid() {
		return ErrInvalidPeriodUnit
	}
	if c.Product == "" {
		return ErrProductRequired
	}
	return nil
}

// Period count bounds for a configuration.
const (
	MinPeriods = 1
	MaxPeriods = 20
)

// Product is a reference entity a configuration points at.
type Product struct {
	ID          uint
	Name        string
	Description string
	Icon        string
	Status      string
}

// NodeTypeRef is the node-type lookup row every per-role parameter set
// references.
type NodeTypeRef struct {
	Name        string
	Description string
	Status      string
}

// Owner is a person running one node of a game.
type Owner struct {
	ID          uint
	GameID      uint
	Name        string
	Lastname    string
	DNINumber   string
	Email       string
	Phone       string
	CompanyName string
	NodeType    NodeType
	Status      string
}
