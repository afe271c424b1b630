// Package formstate models the game creation form: a sparse demand-by-period
// matrix, a derived demand chart, and eight parameter categories whose global
// value propagates one-directionally to the four node-type fields.
package formstate

import (
	"strconv"
	"strings"

	"adaptivegame/internal/domain/game"
)

// CostFields are the cost and price inputs of the form. They default to zero.
type CostFields struct {
	StockCost        float64 `json:"stock_cost"`
	CostPendingOrder float64 `json:"cost_pending_order"`
	PurchaseCost     float64 `json:"purchase_cost"`
	SalePrice        float64 `json:"sale_price"`
}

// State is the full mutable state of the creation form. Demand is a sparse
// mapping from period number to value; periods without an entry read as zero.
type State struct {
	GameName        string `json:"game_name"`
	GameDescription string `json:"game_description"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`

	BusinessName string          `json:"business_name"`
	Periods      int             `json:"periods"`
	PeriodType   game.PeriodUnit `json:"period_type"`
	Product      string          `json:"product"`

	Demand     map[int]float64             `json:"demand"`
	Categories map[Category]CategoryValues `json:"categories"`
	Costs      CostFields                  `json:"costs"`
}

// New returns a form state holding the declared defaults: period unit weeks,
// one period, every category's global and per-node values 1, costs 0.
func New() *State {
	return &State{
		Periods:    game.MinPeriods,
		PeriodType: game.PeriodWeeks,
		Demand:     make(map[int]float64),
		Categories: defaultCategories(),
	}
}

// Reset restores every field to its default value.
func (s *State) Reset() {
	*s = *New()
}

// SetPeriodCount changes the number of demand periods, clamped to [1, 20].
// Demand entries for periods still in range are preserved; entries beyond the
// new count are discarded.
func (s *State) SetPeriodCount(n int) {
	if n < game.MinPeriods {
		n = game.MinPeriods
	}
	if n > game.MaxPeriods {
		n = game.MaxPeriods
	}

	s.Periods = n
	for period := range s.Demand {
		if period > n {
			delete(s.Demand, period)
		}
	}
}

// SetDemand records the demand value for one period. Raw input is coerced to
// a number; periods outside the current range are ignored.
func (s *State) SetDemand(period int, raw string) {
	s.SetDemandValue(period, CoerceNumber(raw))
}

// SetDemandValue records an already-numeric demand value for one period.
func (s *State) SetDemandValue(period int, value float64) {
	if period < game.MinPeriods || period > s.Periods {
		return
	}
	if s.Demand == nil {
		s.Demand = make(map[int]float64)
	}
	s.Demand[period] = value
}

// DemandAt returns the demand for a period, defaulting to zero when the
// period has no entry.
func (s *State) DemandAt(period int) float64 {
	return s.Demand[period]
}

// DemandInputs projects the matrix the form renders: exactly Periods entries,
// one per period, with the stored value or zero.
func (s *State) DemandInputs() []float64 {
	inputs := make([]float64, s.Periods)
	for i := range inputs {
		inputs[i] = s.DemandAt(i + 1)
	}
	return inputs
}

// Normalize repairs a state decoded from an external payload so the rest of
// the methods can rely on its shape: period count clamped, nil maps
// allocated, missing categories filled with defaults.
func (s *State) Normalize() {
	if s.PeriodType == "" {
		s.PeriodType = game.PeriodWeeks
	}
	if s.Demand == nil {
		s.Demand = make(map[int]float64)
	}
	if s.Categories == nil {
		s.Categories = defaultCategories()
	} else {
		for _, cat := range AllCategories() {
			if _, ok := s.Categories[cat]; !ok {
				s.Categories[cat] = defaultCategoryValues()
			}
		}
	}
	s.SetPeriodCount(s.Periods)

	for period := range s.Demand {
		if period < game.MinPeriods || period > s.Periods {
			delete(s.Demand, period)
		}
	}
}

// CoerceNumber converts raw form input to a number; empty or non-numeric
// input coerces to zero.
func CoerceNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
