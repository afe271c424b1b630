package formstate

import "adaptivegame/internal/domain/game"

// Category names one global/per-node-type parameter group of the form.
type Category string

const (
	CategoryInitialBackorder    Category = "initial_backorder"
	CategoryInitialStock        Category = "initial_stock"
	CategorySafetyStock         Category = "safety_stock"
	CategoryTransitOrders       Category = "transit_orders"
	CategorySupplyVariability   Category = "supply_variability"
	CategoryLeadTime            Category = "lead_time"
	CategoryLeadTimeVariability Category = "lead_time_variability"
	CategoryInitialClaim        Category = "initial_claim"
)

// AllCategories returns the eight parameter categories in form order.
func AllCategories() []Category {
	return []Category{
		CategoryInitialBackorder,
		CategoryInitialStock,
		CategorySafetyStock,
		CategoryTransitOrders,
		CategorySupplyVariability,
		CategoryLeadTime,
		CategoryLeadTimeVariability,
		CategoryInitialClaim,
	}
}

func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// NodeValues holds one category's value per supply-chain role.
type NodeValues map[game.NodeType]float64

// CategoryValues pairs a category's global field with its four per-node
// fields. The global field is an editing convenience, not a data constraint:
// setting it overwrites the node values once, and later node edits do not
// write back.
type CategoryValues struct {
	Global float64    `json:"global"`
	Nodes  NodeValues `json:"nodes"`
}

func defaultCategoryValues() CategoryValues {
	nodes := make(NodeValues, len(game.AllNodeTypes()))
	for _, nt := range game.AllNodeTypes() {
		nodes[nt] = 1
	}
	return CategoryValues{Global: 1, Nodes: nodes}
}

func defaultCategories() map[Category]CategoryValues {
	categories := make(map[Category]CategoryValues, len(AllCategories()))
	for _, cat := range AllCategories() {
		categories[cat] = defaultCategoryValues()
	}
	return categories
}

// ApplyGlobal sets a category's global field and unconditionally overwrites
// all four per-node-type fields with the same value.
func (s *State) ApplyGlobal(cat Category, raw string) {
	s.ApplyGlobalValue(cat, CoerceNumber(raw))
}

// ApplyGlobalValue is ApplyGlobal for an already-numeric value.
func (s *State) ApplyGlobalValue(cat Category, value float64) {
	if !cat.IsValid() {
		return
	}
	if s.Categories == nil {
		s.Categories = defaultCategories()
	}

	nodes := make(NodeValues, len(game.AllNodeTypes()))
	for _, nt := range game.AllNodeTypes() {
		nodes[nt] = value
	}
	s.Categories[cat] = CategoryValues{Global: value, Nodes: nodes}
}

// SetNodeValue edits a single per-node-type field. The global field and the
// other three node values are left untouched.
func (s *State) SetNodeValue(cat Category, node game.NodeType, raw string) {
	if !cat.IsValid() || !node.IsValid() {
		return
	}
	if s.Categories == nil {
		s.Categories = defaultCategories()
	}

	values := s.Categories[cat]
	if values.Nodes == nil {
		values.Nodes = make(NodeValues, len(game.AllNodeTypes()))
	}
	values.Nodes[node] = CoerceNumber(raw)
	s.Categories[cat] = values
}

// NodeValue reads one per-node-type field, defaulting to zero.
func (s *State) NodeValue(cat Category, node game.NodeType) float64 {
	values, ok := s.Categories[cat]
	if !ok || values.Nodes == nil {
		return 0
	}
	return values.Nodes[node]
}
