package mapper

import (
	"fmt"
	"strconv"
	"strings"
)

// Chart geometry and color schemes
const (
	ChartWidth     = 700
	HeatmapHeight  = 280
	LineHeight     = 320
	BarHeight      = 320
	HeatmapMaxBins = 48

	SchemeHeatmap     = "viridis"
	SchemeCountries   = "tableau10"
	SchemeYears       = "set1"
	SchemeComposition = "category20"

	// ValueFormat is the d3 format of participation values in tooltips
	ValueFormat = ".2f"
)

// Axis and legend titles
const (
	titleHour          = "Hour of day"
	titleActivity      = "Activity"
	titleParticipation = "Participation (%)"
	titleTimeInterval  = "Time interval"
	titleCountry       = "Country"
	titleYear          = "Year"
	titleActivityGroup = "Activity group"
	titleShare         = "Share of participation"
)

// yearSpan renders years as "2000 vs 2010"
func yearSpan(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, " vs ")
}

// yearRange renders years as "2000 and 2010" using the first and last year
func yearRange(years []int) string {
	switch len(years) {
	case 0:
		return "all years"
	case 1:
		return strconv.Itoa(years[0])
	default:
		return fmt.Sprintf("%d and %d", years[0], years[len(years)-1])
	}
}
