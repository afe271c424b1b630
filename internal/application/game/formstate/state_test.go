package formstate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptivegame/internal/domain/game"
)

func TestNew_Defaults(t *testing.T) {
	s := New()

	assert.Equal(t, game.PeriodWeeks, s.PeriodType)
	assert.Equal(t, game.MinPeriods, s.Periods)
	assert.Empty(t, s.Demand)
	assert.Equal(t, 0.0, s.Costs.StockCost)
	assert.Equal(t, 0.0, s.Costs.CostPendingOrder)
	assert.Equal(t, 0.0, s.Costs.PurchaseCost)
	assert.Equal(t, 0.0, s.Costs.SalePrice)

	for _, cat := range AllCategories() {
		values, ok := s.Categories[cat]
		require.True(t, ok, "category %s missing", cat)
		assert.Equal(t, 1.0, values.Global, "category %s global", cat)
		for _, nt := range game.AllNodeTypes() {
			assert.Equal(t, 1.0, values.Nodes[nt], "category %s node %s", cat, nt)
		}
	}
}

func TestSetPeriodCount_ResizesMatrix(t *testing.T) {
	for n := game.MinPeriods; n <= game.MaxPeriods; n++ {
		s := New()
		s.SetPeriodCount(n)

		inputs := s.DemandInputs()
		assert.Len(t, inputs, n, "period count %d", n)
	}
}

func TestSetPeriodCount_PreservesInRangeDiscardsBeyond(t *testing.T) {
	s := New()
	s.SetPeriodCount(10)
	for p := 1; p <= 10; p++ {
		s.SetDemandValue(p, float64(p*100))
	}

	s.SetPeriodCount(4)

	for p := 1; p <= 4; p++ {
		assert.Equal(t, float64(p*100), s.DemandAt(p), "period %d preserved", p)
	}

	// Growing back does not resurrect discarded entries.
	s.SetPeriodCount(10)
	for p := 5; p <= 10; p++ {
		assert.Equal(t, 0.0, s.DemandAt(p), "period %d discarded", p)
	}
}

func TestSetPeriodCount_Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below minimum", 0, 1},
		{"negative", -5, 1},
		{"above maximum", 21, 20},
		{"far above maximum", 1000, 20},
		{"minimum", 1, 1},
		{"maximum", 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetPeriodCount(tt.in)
			assert.Equal(t, tt.want, s.Periods)
		})
	}
}

func TestSetDemand_IgnoresOutOfRangePeriods(t *testing.T) {
	s := New()
	s.SetPeriodCount(5)

	s.SetDemand(0, "10")
	s.SetDemand(6, "10")
	s.SetDemand(-1, "10")

	assert.Empty(t, s.Demand)
}

func TestDemandChart_ExactlyPeriodsPoints(t *testing.T) {
	s := New()
	s.SetPeriodCount(8)

	// Set entries out of order; the chart must not depend on insertion order.
	s.SetDemand(5, "50")
	s.SetDemand(2, "20")
	s.SetDemand(7, "70")

	chart := s.DemandChart()
	require.Len(t, chart, 8)

	for i, point := range chart {
		assert.Equal(t, i+1, point.Period)
	}
	assert.Equal(t, 0.0, chart[0].Demand)
	assert.Equal(t, 20.0, chart[1].Demand)
	assert.Equal(t, 50.0, chart[4].Demand)
	assert.Equal(t, 70.0, chart[6].Demand)
	assert.Equal(t, 0.0, chart[7].Demand)
}

func TestApplyGlobal_OverwritesAllNodeValues(t *testing.T) {
	for _, cat := range AllCategories() {
		t.Run(string(cat), func(t *testing.T) {
			s := New()
			s.ApplyGlobal(cat, "7")

			values := s.Categories[cat]
			assert.Equal(t, 7.0, values.Global)
			for _, nt := range game.AllNodeTypes() {
				assert.Equal(t, 7.0, values.Nodes[nt])
			}
		})
	}
}

func TestSetNodeValue_NoBackPropagation(t *testing.T) {
	s := New()
	s.ApplyGlobal(CategorySafetyStock, "5")

	s.SetNodeValue(CategorySafetyStock, game.NodeRetail, "9")

	values := s.Categories[CategorySafetyStock]
	assert.Equal(t, 5.0, values.Global, "global keeps its value")
	assert.Equal(t, 9.0, values.Nodes[game.NodeRetail])
	assert.Equal(t, 5.0, values.Nodes[game.NodeManufacturer])
	assert.Equal(t, 5.0, values.Nodes[game.NodeDistributor])
	assert.Equal(t, 5.0, values.Nodes[game.NodeWholesaler])
}

func TestApplyGlobal_AfterNodeEditOverwritesAgain(t *testing.T) {
	s := New()
	s.ApplyGlobal(CategoryLeadTime, "3")
	s.SetNodeValue(CategoryLeadTime, game.NodeWholesaler, "11")

	s.ApplyGlobal(CategoryLeadTime, "4")

	values := s.Categories[CategoryLeadTime]
	assert.Equal(t, 4.0, values.Global)
	for _, nt := range game.AllNodeTypes() {
		assert.Equal(t, 4.0, values.Nodes[nt])
	}
}

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"  ", 0},
		{"abc", 0},
		{"12abc", 0},
		{"42", 42},
		{"3.5", 3.5},
		{"-2", -2},
		{" 8 ", 8},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceNumber(tt.in))
		})
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	s := New()
	s.GameName = "Nightfall Trials"
	s.StartDate = "2026-01-01"
	s.EndDate = "2026-03-01"
	s.PeriodType = game.PeriodDays
	s.SetPeriodCount(12)
	s.SetDemand(3, "30")
	s.ApplyGlobal(CategoryInitialStock, "6")
	s.Costs.StockCost = 2.5

	s.Reset()

	assert.Empty(t, s.GameName)
	assert.Empty(t, s.StartDate)
	assert.Equal(t, game.PeriodWeeks, s.PeriodType)
	assert.Equal(t, game.MinPeriods, s.Periods)
	assert.Empty(t, s.Demand)
	assert.Equal(t, 0.0, s.Costs.StockCost)
	for _, cat := range AllCategories() {
		assert.Equal(t, 1.0, s.Categories[cat].Global, "category %s", cat)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	s := New()
	fields := s.Validate()

	assert.Contains(t, fields, "game_name")
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "end_date")
	assert.Contains(t, fields, "business_name")
	assert.Contains(t, fields, "product")
}

func TestValidate_EndBeforeStart(t *testing.T) {
	s := New()
	s.GameName = "Demo Quest Alpha"
	s.BusinessName = "Acme"
	s.Product = "beer"
	s.StartDate = "2026-06-01"
	s.EndDate = "2026-05-01"

	fields := s.Validate()
	assert.Equal(t, "end date must not precede start date", fields["end_date"])
}

func TestValidate_CompleteFormPasses(t *testing.T) {
	s := New()
	s.GameName = "Demo Quest Alpha"
	s.BusinessName = "Acme"
	s.Product = "beer"
	s.StartDate = "2026-01-15"
	s.EndDate = "2026-03-30"
	s.SetPeriodCount(6)

	assert.Empty(t, s.Validate())
}

func TestNormalize_RepairsDecodedState(t *testing.T) {
	s := &State{Periods: 50}
	s.Normalize()

	assert.Equal(t, game.MaxPeriods, s.Periods)
	assert.Equal(t, game.PeriodWeeks, s.PeriodType)
	assert.NotNil(t, s.Demand)
	assert.Len(t, s.Categories, len(AllCategories()))
}

func TestNormalize_DropsOutOfRangeDemand(t *testing.T) {
	s := &State{
		Periods: 3,
		Demand:  map[int]float64{1: 10, 3: 30, 4: 40, -1: 5},
	}
	s.Normalize()

	assert.Equal(t, map[int]float64{1: 10, 3: 30}, s.Demand)
}
