package models

// Observation represents one row of the cleaned time-use survey dataset:
// the participation rate of an activity group during a 10-minute interval
type Observation struct {
	Country       string  `json:"country" db:"country"`
	Year          int     `json:"year" db:"year"`
	Hour          float64 `json:"hour" db:"hour"`             // 0 <= hour < 24, fractional for 10-minute slots
	TimeLabel     string  `json:"time_label" db:"time_label"` // e.g. "07:00-07:10"
	ActivityGroup string  `json:"activity_group" db:"activity_group"`
	Value         float64 `json:"value" db:"value"` // Participation rate in percent
}

// HourBin returns the hour truncated to an integer (0-23)
func (o Observation) HourBin() int {
	return int(o.Hour)
}

// ObservationKey identifies an observation for duplicate detection
type ObservationKey struct {
	Country       string
	Year          int
	ActivityGroup string
	Hour          float64
}

// Key returns the uniqueness key of the observation
func (o Observation) Key() ObservationKey {
	return ObservationKey{
		Country:       o.Country,
		Year:          o.Year,
		ActivityGroup: o.ActivityGroup,
		Hour:          o.Hour,
	}
}

// ValueSummary represents descriptive statistics over the value column of a subset
type ValueSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}
