package game

// The configuration sub-tables form a strict tree under one Configuration:
// each row carries the configuration it belongs to and, except for initial
// claims, the node type it parameterizes.

// CostsPrice holds the cost and price parameters for one node type.
type CostsPrice struct {
	ID               uint
	ConfigurationID  uint
	StockCost        float64
	CostPendingOrder float64
	PurchaseCost     float64
	SalePrice        float64
	NodeType         NodeType
	Status           string
}

// DeliveryTimes holds lead time and its variability for one node type.
type DeliveryTimes struct {
	ID              uint
	ConfigurationID uint
	Time            int
	Variability     int
	NodeType        NodeType
	Status          string
}

// EventMessage is a message shown to one node type at a given period.
type EventMessage struct {
	ID              uint
	ConfigurationID uint
	NodeType        NodeType
	Message         string
	Period          int
	Status          string
}

// InitialClaim is one demand value for one period. The demand-by-period form
// matrix persists here, one row per period.
type InitialClaim struct {
	ID              uint
	ConfigurationID uint
	PeriodNumber    int
	ClaimValue      float64
	Status          string
}

// InitialStock holds the starting inventory for one node type.
type InitialStock struct {
	ID              uint
	ConfigurationID uint
	Stock           float64
	InitialOrder    float64
	NodeType        NodeType
	Status          string
}

// OrderRestriction bounds the orders one node type may place.
type OrderRestriction struct {
	ID              uint
	ConfigurationID uint
	Minimum         int
	Maximum         int
	BatchSize       int
	NodeType        NodeType
	Status          string
}

// StockNotification is the low-stock alert text for one node type.
type StockNotification struct {
	ID              uint
	ConfigurationID uint
	NodeType        NodeType
	Message         string
	Status          string
}

// ConfigurationTree is the full aggregate written at "save game" time: one
// Game, one Configuration, and the dependent rows of every sub-table. It
// persists atomically; a partial write would orphan the configuration.
type ConfigurationTree struct {
	Game          Game
	Configuration Configuration

	Costs              []CostsPrice
	DeliveryTimes      []DeliveryTimes
	EventMessages      []EventMessage
	InitialClaims      []InitialClaim
	InitialStocks      []InitialStock
	OrderRestrictions  []OrderRestriction
	StockNotifications []StockNotification
}

// Validate checks the whole tree before it reaches the store.
func (t *ConfigurationTree) Validate() error {
	if err := t.Game.Validate(); err != nil {
		return err
	}
	if err := t.Configuration.Validate(); err != nil {
		return err
	}
	for _, c := range t.Costs {
		if !c.NodeType.IsValid() {
			return ErrInvalidNodeType
		}
	}
	for _, d := range t.DeliveryTimes {
		if !d.NodeType.IsValid() {
			return ErrInvalidNodeType
		}
	}
	for _, s := range t.InitialStocks {
		if !s.NodeType.IsValid() {
			return ErrInvalidNodeType
		}
	}
	for _, o := range t.OrderRestrictions {
		if !o.NodeType.IsValid() {
			return ErrInvalidNodeType
		}
	}
	for _, claim := range t.InitialClaims {
		if claim.PeriodNumber < MinPeriods || claim.PeriodNumber > t.Configuration.Periods {
			return ErrClaimPeriodOutOfRange
		}
	}
	return nil
}
