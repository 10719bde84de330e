// Package mapper turns a filter selection over the survey dataset into the
// four chart descriptions of the dashboard. Every function is pure: the
// dataset is only read and the same inputs always yield the same output.
package mapper

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/life-rhythms-go/internal/dataset"
	"github.com/jengzang/life-rhythms-go/internal/models"
)

// Hour slider bounds
const (
	MinHour = 0
	MaxHour = 23
)

// Dashboard is the full output for one selection
type Dashboard struct {
	Selection models.Selection `json:"selection"`
	Views     []View           `json:"views"`
}

// Validate checks every selection value against the dataset's domains
func Validate(ds *dataset.Dataset, sel models.Selection) error {
	if err := checkCountry(ds, sel.Country); err != nil {
		return err
	}
	if err := checkYear(ds, sel.Year); err != nil {
		return err
	}
	if err := checkActivity(ds, sel.Activity); err != nil {
		return err
	}
	return checkHour(sel.Hour)
}

// Map validates the selection and builds all views. The views share no
// mutable state, so they are built concurrently.
func Map(ds *dataset.Dataset, sel models.Selection) (Dashboard, error) {
	if err := Validate(ds, sel); err != nil {
		return Dashboard{}, err
	}

	views := make([]View, len(ViewIDs))
	var g errgroup.Group
	for i, id := range ViewIDs {
		i, id := i, id
		g.Go(func() error {
			v, err := Build(ds, id, sel)
			if err != nil {
				return err
			}
			views[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	return Dashboard{Selection: sel, Views: views}, nil
}

// Build produces a single view by id, reading only the selection fields it needs
func Build(ds *dataset.Dataset, id string, sel models.Selection) (View, error) {
	switch id {
	case ViewDailyRhythm:
		return DailyRhythm(ds, sel.Country, sel.Year)
	case ViewCountryComparison:
		return CountryComparison(ds, sel.Activity, sel.Year)
	case ViewTemporalComparison:
		return TemporalComparison(ds, sel.Country, sel.Activity)
	case ViewComposition:
		return CompositionAtHour(ds, sel.Year, sel.Hour)
	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownView, id)
	}
}

// Options returns the legal values of every control and the default
// selection: the first sorted value of each domain and defaultHour.
func Options(ds *dataset.Dataset, defaultHour int) models.FilterOptions {
	if defaultHour < MinHour || defaultHour > MaxHour {
		defaultHour = 8
	}

	opts := models.FilterOptions{
		Countries:  ds.Countries(),
		Years:      ds.Years(),
		Activities: ds.Activities(),
		HourMin:    MinHour,
		HourMax:    MaxHour,
	}
	opts.Default = models.Selection{Hour: defaultHour}
	if len(opts.Countries) > 0 {
		opts.Default.Country = opts.Countries[0]
	}
	if len(opts.Years) > 0 {
		opts.Default.Year = opts.Years[0]
	}
	if len(opts.Activities) > 0 {
		opts.Default.Activity = opts.Activities[0]
	}
	return opts
}

func checkCountry(ds *dataset.Dataset, country string) error {
	if !ds.HasCountry(country) {
		return &InvalidFilterValueError{Field: "country", Value: country}
	}
	return nil
}

func checkYear(ds *dataset.Dataset, year int) error {
	if !ds.HasYear(year) {
		return &InvalidFilterValueError{Field: "year", Value: year}
	}
	return nil
}

func checkActivity(ds *dataset.Dataset, activity string) error {
	if !ds.HasActivity(activity) {
		return &InvalidFilterValueError{Field: "activity", Value: activity}
	}
	return nil
}

func checkHour(hour int) error {
	if hour < MinHour || hour > MaxHour {
		return &InvalidFilterValueError{Field: "hour", Value: hour}
	}
	return nil
}
