package seeds

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"adaptivegame/internal/infrastructure/persistence/models"
)

// ApplyFixture loads demo games on top of the baseline seeds. Only used when
// the server runs against the in-memory fixture database, so the dashboard
// has something to show without a real Postgres behind it.
func ApplyFixture(db *gorm.DB) error {
	type fixtureGame struct {
		name        string
		description string
		start       time.Time
		periods     int
	}

	day := func(offset int) time.Time {
		return time.Now().AddDate(0, 0, offset).Truncate(24 * time.Hour)
	}

	games := []fixtureGame{
		{"Demo Quest Alpha", "Introductory run for new facilitators", day(-14), 8},
		{"Nightfall Trials", "Mid-length scenario with volatile demand", day(-3), 12},
		{"Legends Cup Finals", "Tournament bracket, full twenty periods", day(7), 20},
	}

	for _, g := range games {
		desc := g.description
		row := models.GameModel{
			Name:        g.name,
			Description: &desc,
			StartDate:   g.start,
			EndDate:     g.start.AddDate(0, 0, 7*g.periods),
		}
		if err := db.Where(models.GameModel{Name: g.name}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed fixture game %q: %w", g.name, err)
		}

		business := g.name + " Co."
		cfg := models.GameConfigurationModel{
			GameID:       row.ID,
			BusinessName: &business,
			Periods:      g.periods,
			PeriodType:   "weeks",
			Product:      "beer",
		}
		if err := db.Where(models.GameConfigurationModel{GameID: row.ID}).FirstOrCreate(&cfg).Error; err != nil {
			return fmt.Errorf("seed fixture configuration for %q: %w", g.name, err)
		}
	}

	return nil
}
