package models

// Selection represents the filter parameters driving all dashboard views
type Selection struct {
	Country  string `form:"country" json:"country"`
	Year     int    `form:"year" json:"year"`
	Activity string `form:"activity" json:"activity"` // Activity group
	Hour     int    `form:"hour" json:"hour"`         // 0-23
}

// FilterOptions represents the legal values of every selection control
type FilterOptions struct {
	Countries  []string  `json:"countries"`
	Years      []int     `json:"years"`
	Activities []string  `json:"activities"`
	HourMin    int       `json:"hour_min"`
	HourMax    int       `json:"hour_max"`
	Default    Selection `json:"default"`
}
