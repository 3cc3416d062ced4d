package entities

import "time"

// DateLayout is the civil date format used by every record date.
const DateLayout = "2006-01-02"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Field is a cuartel: a cultivated land sector with its last soil analysis.
type Field struct {
	ID                  string      `gorm:"primaryKey" json:"id"`
	Position            int         `gorm:"index" json:"-"`
	Name                string      `json:"name"`
	Area                float64     `json:"area"` // ha
	CropType            string      `json:"crop_type"`
	SoilType            string      `json:"soil_type"`
	IrrigationSystem    string      `json:"irrigation_system"`
	Status              FieldStatus `gorm:"index" json:"status"`
	PlantingDate        string      `json:"planting_date"`
	ExpectedHarvestDate string      `json:"expected_harvest_date"`
	LastSoilAnalysis    string      `json:"last_soil_analysis"`
	PH                  float64     `gorm:"column:ph" json:"ph"`
	OrganicMatter       float64     `json:"organic_matter"` // %
	Nitrogen            float64     `json:"nitrogen"`       // ppm
	Phosphorus          float64     `json:"phosphorus"`     // ppm
	Potassium           float64     `json:"potassium"`      // ppm
	Productivity        float64     `json:"productivity"`   // 0..100
	Notes               string      `json:"notes"`
	Coordinates         Coordinates `gorm:"embedded;embeddedPrefix:coord_" json:"coordinates"`
}

func (f Field) RecordID() string           { return f.ID }
func (f Field) CurrentStatus() FieldStatus { return f.Status }
func (f Field) WithStatus(s FieldStatus) Field {
	f.Status = s
	return f
}

type FieldDraft struct {
	Name                string      `json:"name"`
	Area                float64     `json:"area"`
	CropType            string      `json:"crop_type"`
	SoilType            string      `json:"soil_type"`
	IrrigationSystem    string      `json:"irrigation_system"`
	PlantingDate        string      `json:"planting_date"`
	ExpectedHarvestDate string      `json:"expected_harvest_date"`
	Notes               string      `json:"notes"`
	Coordinates         Coordinates `json:"coordinates"`
}

const FieldPrefix = "C"

// NewField starts a cuartel in preparation with neutral soil values until
// a real analysis is recorded.
func NewField(id string, d FieldDraft, today time.Time) Field {
	return Field{
		ID:                  id,
		Name:                d.Name,
		Area:                d.Area,
		CropType:            d.CropType,
		SoilType:            d.SoilType,
		IrrigationSystem:    d.IrrigationSystem,
		Status:              FieldPreparation,
		PlantingDate:        d.PlantingDate,
		ExpectedHarvestDate: d.ExpectedHarvestDate,
		LastSoilAnalysis:    today.Format(DateLayout),
		PH:                  7.0,
		OrganicMatter:       2.5,
		Nitrogen:            40,
		Phosphorus:          20,
		Potassium:           160,
		Productivity:        0,
		Notes:               d.Notes,
		Coordinates:         d.Coordinates,
	}
}
