package proximity

import (
	"time"

	"agro/entities"
)

type HarvestForecast struct {
	Field         entities.Field `json:"field"`
	DaysToHarvest int            `json:"days_to_harvest"`
}

// Harvests lists the active fields with the days left to their expected
// harvest. Fields without a readable harvest date are left out.
func Harvests(now time.Time, fs []entities.Field) []HarvestForecast {
	out := []HarvestForecast{}
	for _, f := range fs {
		if f.Status != entities.FieldActive || f.ExpectedHarvestDate == "" {
			continue
		}
		n, err := DaysUntilDate(now, f.ExpectedHarvestDate)
		if err != nil {
			continue
		}
		out = append(out, HarvestForecast{Field: f, DaysToHarvest: n})
	}
	return out
}
