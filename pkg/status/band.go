package status

// Band is a three-level quality rating used to color measurements.
type Band string

const (
	Good Band = "good"
	Fair Band = "fair"
	Poor Band = "poor"
)

// Fuel rates a tank level in percent.
func Fuel(level float64) Band {
	switch {
	case level > 70:
		return Good
	case level > 30:
		return Fair
	}
	return Poor
}

// Productivity rates a field productivity in percent.
func Productivity(p float64) Band {
	switch {
	case p >= 80:
		return Good
	case p >= 60:
		return Fair
	}
	return Poor
}

// SoilHealth rates a composite soil score.
func SoilHealth(score int) Band {
	switch {
	case score >= 80:
		return Good
	case score >= 60:
		return Fair
	}
	return Poor
}

// Category returns the badge category used to color a band.
func (b Band) Category() Category {
	switch b {
	case Good:
		return Success
	case Fair:
		return Warning
	}
	return Danger
}
