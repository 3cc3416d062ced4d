// Package soil scores the health of a cuartel's soil from its last
// analysis.
package soil

import (
	"agro/entities"
	"agro/pkg/status"
)

// Score sums four bucketed sub-scores of 25 points each. Potassium is not
// part of the score. The result is always within [45, 100].
func Score(ph, organicMatter, nitrogen, phosphorus float64) int {
	return phScore(ph) + organicMatterScore(organicMatter) + nitrogenScore(nitrogen) + phosphorusScore(phosphorus)
}

func phScore(ph float64) int {
	if ph >= 6.0 && ph <= 7.5 {
		return 25
	}
	return 15
}

func organicMatterScore(om float64) int {
	switch {
	case om >= 3.0:
		return 25
	case om >= 2.0:
		return 20
	}
	return 10
}

func nitrogenScore(n float64) int {
	switch {
	case n >= 40:
		return 25
	case n >= 30:
		return 20
	}
	return 10
}

func phosphorusScore(p float64) int {
	switch {
	case p >= 20:
		return 25
	case p >= 15:
		return 20
	}
	return 10
}

// Report is the soil view of one field.
type Report struct {
	FieldID string      `json:"field_id"`
	Name    string      `json:"name"`
	Score   int         `json:"score"`
	Band    status.Band `json:"band"`
	PH      float64     `json:"ph"`
	OM      float64     `json:"organic_matter"`
	N       float64     `json:"nitrogen"`
	P       float64     `json:"phosphorus"`
	K       float64     `json:"potassium"`
}

func FieldScore(f entities.Field) int {
	return Score(f.PH, f.OrganicMatter, f.Nitrogen, f.Phosphorus)
}

func FieldReport(f entities.Field) Report {
	s := FieldScore(f)
	return Report{
		FieldID: f.ID,
		Name:    f.Name,
		Score:   s,
		Band:    status.SoilHealth(s),
		PH:      f.PH,
		OM:      f.OrganicMatter,
		N:       f.Nitrogen,
		P:       f.Phosphorus,
		K:       f.Potassium,
	}
}
