package game

// NodeType is a role in the simulated supply chain. Per-role parameters are
// set against one of these for every configuration category.
type NodeType string

const (
	NodeManufacturer NodeType = "manufacturer"
	NodeDistributor  NodeType = "distributor"
	NodeWholesaler   NodeType = "wholesaler"
	NodeRetail       NodeType = "retail"
)

// AllNodeTypes returns the four supply-chain roles in canonical order.
func AllNodeTypes() []NodeType {
	return []NodeType{NodeManufacturer, NodeDistributor, NodeWholesaler, NodeRetail}
}

func (n NodeType) String() string {
	return string(n)
}

func (n NodeType) IsValid() bool {
	switch n {
	case NodeManufacturer, NodeDistributor, NodeWholesaler, NodeRetail:
		return true
	}
	return false
}

// PeriodUnit is the time unit a configuration's periods are expressed in.
type PeriodUnit string

const (
	PeriodWeeks PeriodUnit = "weeks"
	PeriodDays  PeriodUnit = "days"
	PeriodHours PeriodUnit = "hours"
)

func (p PeriodUnit) IsValid() bool {
	switch p {
	case PeriodWeeks, PeriodDays, PeriodHours:
		return true
	}
	return false
}

func (p PeriodUnit) String() string {
	return string(p)
}
