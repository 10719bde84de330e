package mapper

import (
	"fmt"
	"sort"

	"github.com/jengzang/life-rhythms-go/internal/dataset"
	"github.com/jengzang/life-rhythms-go/internal/models"
	"github.com/jengzang/life-rhythms-go/internal/stats"
)

// View ids, in dashboard order
const (
	ViewDailyRhythm        = "daily-rhythm"
	ViewCountryComparison  = "country-comparison"
	ViewTemporalComparison = "temporal-comparison"
	ViewComposition        = "composition"
)

// ViewIDs lists every view in the order the dashboard shows them
var ViewIDs = []string{ViewDailyRhythm, ViewCountryComparison, ViewTemporalComparison, ViewComposition}

// View is one dashboard section: a filtered subset and its chart description
type View struct {
	ID      string              `json:"id"`
	Header  string              `json:"header"`
	Caption string              `json:"caption"`
	Chart   models.ChartSpec    `json:"chart"`
	Summary models.ValueSummary `json:"summary"`
	Shares  []Share             `json:"shares,omitempty"` // composition view only
}

// Rows returns the filtered subset the chart is drawn from
func (v View) Rows() []models.Observation {
	return v.Chart.Data.Values
}

// Share is the normalized contribution of one activity group to a country's bar
type Share struct {
	Country       string  `json:"country"`
	ActivityGroup string  `json:"activity_group"`
	Total         float64 `json:"total"` // sum(value) within the pair
	Share         float64 `json:"share"` // Total over the country's sum, 0-1
}

// DailyRhythm describes the activity-by-hour heatmap of one country in one year
func DailyRhythm(ds *dataset.Dataset, country string, year int) (View, error) {
	if err := checkCountry(ds, country); err != nil {
		return View{}, err
	}
	if err := checkYear(ds, year); err != nil {
		return View{}, err
	}

	subset := ds.Where(func(o models.Observation) bool {
		return o.Country == country && o.Year == year
	})

	chart := newChart(models.MarkRect, ChartWidth, HeatmapHeight,
		fmt.Sprintf("Daily Rhythm – %s (%d)", country, year), subset)
	chart.Encoding = models.Encoding{
		X: models.Channel{Field: dataset.ColHour, Type: models.Quantitative, Title: titleHour,
			Bin: &models.Bin{MaxBins: HeatmapMaxBins}},
		Y: models.Channel{Field: dataset.ColActivityGroup, Type: models.Nominal, Title: titleActivity},
		Color: models.Channel{Field: dataset.ColValue, Type: models.Quantitative, Title: titleParticipation,
			Scale: &models.Scale{Scheme: SchemeHeatmap}},
		Tooltip: []models.Channel{
			{Field: dataset.ColActivityGroup, Type: models.Nominal, Title: titleActivity},
			{Field: dataset.ColTimeLabel, Type: models.Nominal, Title: titleTimeInterval},
			{Field: dataset.ColValue, Type: models.Quantitative, Title: titleParticipation, Format: ValueFormat},
		},
	}

	return View{
		ID:     ViewDailyRhythm,
		Header: "Daily Activity Rhythm",
		Caption: fmt.Sprintf("This heatmap shows the percentage of people engaged in each activity "+
			"across the day for %s in %d.", country, year),
		Chart:   chart,
		Summary: summarize(subset),
	}, nil
}

// CountryComparison describes one line per country for an activity in a year
func CountryComparison(ds *dataset.Dataset, activity string, year int) (View, error) {
	if err := checkYear(ds, year); err != nil {
		return View{}, err
	}
	if err := checkActivity(ds, activity); err != nil {
		return View{}, err
	}

	subset := ds.Where(func(o models.Observation) bool {
		return o.ActivityGroup == activity && o.Year == year
	})

	chart := newChart(models.MarkLine, ChartWidth, LineHeight,
		fmt.Sprintf("%s – All Countries (%d)", activity, year), subset)
	chart.Encoding = lineEncoding(
		models.Channel{Field: dataset.ColCountry, Type: models.Nominal, Title: titleCountry,
			Scale: &models.Scale{Scheme: SchemeCountries}},
	)

	return View{
		ID:     ViewCountryComparison,
		Header: "Country Comparison for Selected Activity",
		Caption: fmt.Sprintf("This line chart compares how different countries engage in %s "+
			"across the day in %d.", activity, year),
		Chart:   chart,
		Summary: summarize(subset),
	}, nil
}

// TemporalComparison describes one line per survey year for a country and activity
func TemporalComparison(ds *dataset.Dataset, country, activity string) (View, error) {
	if err := checkCountry(ds, country); err != nil {
		return View{}, err
	}
	if err := checkActivity(ds, activity); err != nil {
		return View{}, err
	}

	subset := ds.Where(func(o models.Observation) bool {
		return o.Country == country && o.ActivityGroup == activity
	})

	years := ds.Years()
	chart := newChart(models.MarkLine, ChartWidth, LineHeight,
		fmt.Sprintf("%s — %s in %s", yearSpan(years), activity, country), subset)
	chart.Encoding = lineEncoding(
		models.Channel{Field: dataset.ColYear, Type: models.Nominal, Title: titleYear,
			Scale: &models.Scale{Scheme: SchemeYears}},
	)

	return View{
		ID:     ViewTemporalComparison,
		Header: "Change Over Time: " + yearSpan(years),
		Caption: fmt.Sprintf("This view compares %s in %s between %s, "+
			"showing how the daily pattern has shifted over time.", activity, country, yearRange(years)),
		Chart:   chart,
		Summary: summarize(subset),
	}, nil
}

// CompositionAtHour describes the normalized activity mix of every country
// during one hour of the day in one year
func CompositionAtHour(ds *dataset.Dataset, year, hour int) (View, error) {
	if err := checkYear(ds, year); err != nil {
		return View{}, err
	}
	if err := checkHour(hour); err != nil {
		return View{}, err
	}

	subset := ds.Where(func(o models.Observation) bool {
		return o.Year == year && o.HourBin() == hour
	})

	chart := newChart(models.MarkBar, ChartWidth, BarHeight,
		fmt.Sprintf("Activity Composition at %02d:00 (%d)", hour, year), subset)
	chart.Encoding = models.Encoding{
		X: models.Channel{Field: dataset.ColValue, Type: models.Quantitative, Title: titleShare,
			Aggregate: "sum", Stack: "normalize"},
		Y: models.Channel{Field: dataset.ColCountry, Type: models.Nominal, Title: titleCountry},
		Color: models.Channel{Field: dataset.ColActivityGroup, Type: models.Nominal, Title: titleActivityGroup,
			Scale: &models.Scale{Scheme: SchemeComposition}},
		Tooltip: []models.Channel{
			{Field: dataset.ColCountry, Type: models.Nominal, Title: titleCountry},
			{Field: dataset.ColActivityGroup, Type: models.Nominal, Title: titleActivity},
			{Field: dataset.ColValue, Type: models.Quantitative, Title: titleParticipation,
				Aggregate: "sum", Format: ValueFormat},
		},
	}

	return View{
		ID:     ViewComposition,
		Header: "Activity Composition at Selected Hour",
		Caption: fmt.Sprintf("This chart shows how activities are distributed across countries at %d:00 "+
			"in %d. Bars are normalized to show relative shares.", hour, year),
		Chart:   chart,
		Summary: summarize(subset),
		Shares:  normalizedShares(subset),
	}, nil
}

func newChart(mark string, width, height int, title string, subset dataset.View) models.ChartSpec {
	return models.ChartSpec{
		Schema: models.VegaLiteSchema,
		Title:  title,
		Width:  width,
		Height: height,
		Mark:   models.Mark{Type: mark},
		Data:   models.ChartData{Values: subset.Rows()},
	}
}

// lineEncoding is shared by both line charts; only the series channel differs
func lineEncoding(series models.Channel) models.Encoding {
	seriesTooltip := models.Channel{Field: series.Field, Type: series.Type, Title: series.Title}
	return models.Encoding{
		X:     models.Channel{Field: dataset.ColHour, Type: models.Quantitative, Title: titleHour},
		Y:     models.Channel{Field: dataset.ColValue, Type: models.Quantitative, Title: titleParticipation},
		Color: series,
		Tooltip: []models.Channel{
			seriesTooltip,
			{Field: dataset.ColTimeLabel, Type: models.Nominal, Title: titleTimeInterval},
			{Field: dataset.ColValue, Type: models.Quantitative, Title: titleParticipation, Format: ValueFormat},
		},
	}
}

func summarize(subset dataset.View) models.ValueSummary {
	values := subset.Values()
	return models.ValueSummary{
		Count:  len(values),
		Min:    stats.Min(values),
		Mean:   stats.Round2(stats.Mean(values)),
		Median: stats.Round2(stats.Median(values)),
		Max:    stats.Max(values),
	}
}

// normalizedShares sums value per (country, activity group) and scales each
// country's sums to 1. Output is sorted by country, then activity group.
func normalizedShares(subset dataset.View) []Share {
	type pair struct{ country, activity string }
	totals := make(map[pair]float64)
	activitiesByCountry := make(map[string][]string)

	for i := 0; i < subset.Len(); i++ {
		o := subset.At(i)
		p := pair{o.Country, o.ActivityGroup}
		if _, seen := totals[p]; !seen {
			activitiesByCountry[o.Country] = append(activitiesByCountry[o.Country], o.ActivityGroup)
		}
		totals[p] += o.Value
	}

	countries := make([]string, 0, len(activitiesByCountry))
	for c := range activitiesByCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	var shares []Share
	for _, country := range countries {
		activities := activitiesByCountry[country]
		sort.Strings(activities)

		sums := make([]float64, len(activities))
		for i, a := range activities {
			sums[i] = totals[pair{country, a}]
		}
		for i, share := range stats.Shares(sums) {
			shares = append(shares, Share{
				Country:       country,
				ActivityGroup: activities[i],
				Total:         sums[i],
				Share:         share,
			})
		}
	}
	return shares
}
