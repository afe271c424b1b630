package formstate

// ChartPoint is one point of the derived demand chart.
type ChartPoint struct {
	Period int     `json:"period"`
	Demand float64 `json:"demand"`
}

// DemandChart projects the read-only chart from the demand matrix: exactly
// one point per period from 1 to the chosen count, with missing entries read
// as zero. It is pure derived state and is recomputed on every call.
func (s *State) DemandChart() []ChartPoint {
	points := make([]ChartPoint, 0, s.Periods)
	for period := 1; period <= s.Periods; period++ {
		points = append(points, ChartPoint{
			Period: period,
			Demand: s.DemandAt(period),
		})
	}
	return points
}
