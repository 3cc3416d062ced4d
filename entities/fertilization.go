package entities

type FertilizationRecord struct {
	ID                  string              `gorm:"primaryKey" json:"id"`
	Position            int                 `gorm:"index" json:"-"`
	Field               string              `json:"field"`
	Crop                string              `json:"crop"`
	FertilizerType      string              `json:"fertilizer_type"`
	Composition         string              `json:"composition"`
	ApplicationRate     float64             `json:"application_rate"` // kg/ha
	TotalAmount         float64             `json:"total_amount"`     // kg
	ApplicationMethod   string              `json:"application_method"`
	ApplicationDate     string              `json:"application_date"`
	NextApplicationDate string              `json:"next_application_date"`
	Cost                float64             `json:"cost"`
	AppliedBy           string              `json:"applied_by"`
	Notes               string              `json:"notes"`
	Status              FertilizationStatus `gorm:"index" json:"status"`
}

func (f FertilizationRecord) RecordID() string                   { return f.ID }
func (f FertilizationRecord) CurrentStatus() FertilizationStatus { return f.Status }
func (f FertilizationRecord) WithStatus(s FertilizationStatus) FertilizationRecord {
	f.Status = s
	return f
}

type FertilizationDraft struct {
	Field               string  `json:"field"`
	Crop                string  `json:"crop"`
	FertilizerType      string  `json:"fertilizer_type"`
	ApplicationRate     float64 `json:"application_rate"`
	TotalAmount         float64 `json:"total_amount"`
	ApplicationMethod   string  `json:"application_method"`
	ApplicationDate     string  `json:"application_date"`
	NextApplicationDate string  `json:"next_application_date"`
	Cost                float64 `json:"cost"`
	AppliedBy           string  `json:"applied_by"`
	Notes               string  `json:"notes"`
}

const FertilizationPrefix = "F"

// NewFertilizationRecord builds a scheduled application. composition comes
// from the fertilizer catalog and is empty for unlisted products.
func NewFertilizationRecord(id string, d FertilizationDraft, composition string) FertilizationRecord {
	return FertilizationRecord{
		ID:                  id,
		Field:               d.Field,
		Crop:                d.Crop,
		FertilizerType:      d.FertilizerType,
		Composition:         composition,
		ApplicationRate:     d.ApplicationRate,
		TotalAmount:         d.TotalAmount,
		ApplicationMethod:   d.ApplicationMethod,
		ApplicationDate:     d.ApplicationDate,
		NextApplicationDate: d.NextApplicationDate,
		Cost:                d.Cost,
		AppliedBy:           d.AppliedBy,
		Notes:               d.Notes,
		Status:              FertilizationScheduled,
	}
}
