package formstate

import (
	"time"

	"adaptivegame/internal/domain/game"
)

const dateLayout = "2006-01-02"

// Validate checks every required leaf field and returns field-scoped error
// messages keyed by field name. An empty map means the form may be
// submitted.
func (s *State) Validate() map[string]string {
	fields := make(map[string]string)

	if s.GameName == "" {
		fields["game_name"] = "name is required"
	}

	var start, end time.Time
	var startErr, endErr error

	if s.StartDate == "" {
		fields["start_date"] = "start date is required"
	} else if start, startErr = time.Parse(dateLayout, s.StartDate); startErr != nil {
		fields["start_date"] = "start date must be a valid date"
	}

	if s.EndDate == "" {
		fields["end_date"] = "end date is required"
	} else if end, endErr = time.Parse(dateLayout, s.EndDate); endErr != nil {
		fields["end_date"] = "end date must be a valid date"
	}

	if startErr == nil && endErr == nil && s.StartDate != "" && s.EndDate != "" {
		if end.Before(start) {
			fields["end_date"] = "end date must not precede start date"
		}
	}

	if s.BusinessName == "" {
		fields["business_name"] = "business name is required"
	}

	if s.Product == "" {
		fields["product"] = "product is required"
	}

	if s.Periods < game.MinPeriods || s.Periods > game.MaxPeriods {
		fields["periods"] = "periods must be between 1 and 20"
	}

	if !s.PeriodType.IsValid() {
		fields["period_type"] = "period unit must be weeks, days or hours"
	}

	return fields
}

// Dates returns the parsed start and end dates. Call only after Validate
// reported no date errors.
func (s *State) Dates() (start, end time.Time) {
	start, _ = time.Parse(dateLayout, s.StartDate)
	end, _ = time.Parse(dateLayout, s.EndDate)
	return start, end
}
