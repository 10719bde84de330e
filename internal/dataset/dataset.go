package dataset

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/jengzang/life-rhythms-go/internal/models"
)

// DuplicatePolicy decides what happens to rows sharing an observation key
type DuplicatePolicy string

const (
	// DuplicatesAllow keeps every row and only logs how many keys repeat.
	DuplicatesAllow DuplicatePolicy = "allow"
	// DuplicatesReject fails the load.
	DuplicatesReject DuplicatePolicy = "reject"
	// DuplicatesAverage collapses repeated keys into one row holding the mean value.
	DuplicatesAverage DuplicatePolicy = "average"
)

// ParseDuplicatePolicy maps a config string to a policy
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DuplicatesAllow, nil
	case DuplicatesAllow, DuplicatesReject, DuplicatesAverage:
		return p, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// Dataset is the immutable set of observations shared by every request.
// Nothing mutates it after New returns.
type Dataset struct {
	rows       []models.Observation
	countries  []string
	years      []int
	activities []string
}

// New validates rows, applies the duplicate policy and indexes the distinct
// values of the categorical columns. The rows slice is copied.
func New(rows []models.Observation, policy DuplicatePolicy) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", ErrMalformedDataset)
	}

	for i, o := range rows {
		if err := validate(o); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedDataset, i+1, err)
		}
	}

	owned, err := applyDuplicatePolicy(rows, policy)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{rows: owned}
	ds.index()
	return ds, nil
}

func validate(o models.Observation) error {
	switch {
	case strings.TrimSpace(o.Country) == "":
		return fmt.Errorf("empty country")
	case strings.TrimSpace(o.ActivityGroup) == "":
		return fmt.Errorf("empty activity_group")
	case strings.TrimSpace(o.TimeLabel) == "":
		return fmt.Errorf("empty time_label")
	case math.IsNaN(o.Hour) || o.Hour < 0 || o.Hour >= 24:
		return fmt.Errorf("hour %v outside [0,24)", o.Hour)
	case math.IsNaN(o.Value) || math.IsInf(o.Value, 0) || o.Value < 0 || o.Value > 100:
		return fmt.Errorf("value %v is not a percentage", o.Value)
	}
	return nil
}

func applyDuplicatePolicy(rows []models.Observation, policy DuplicatePolicy) ([]models.Observation, error) {
	firstAt := make(map[models.ObservationKey]int, len(rows))
	counts := make(map[models.ObservationKey]int)
	out := make([]models.Observation, 0, len(rows))
	sums := make(map[models.ObservationKey]float64)
	duplicates := 0

	for _, o := range rows {
		key := o.Key()
		idx, seen := firstAt[key]
		if !seen {
			firstAt[key] = len(out)
			counts[key] = 1
			sums[key] = o.Value
			out = append(out, o)
			continue
		}

		duplicates++
		switch policy {
		case DuplicatesReject:
			return nil, fmt.Errorf("%w: %s/%d/%s at hour %v", ErrDuplicateObservation,
				o.Country, o.Year, o.ActivityGroup, o.Hour)
		case DuplicatesAverage:
			counts[key]++
			sums[key] += o.Value
			out[idx].Value = sums[key] / float64(counts[key])
		default:
			out = append(out, o)
		}
	}

	if duplicates > 0 {
		log.Printf("Dataset contains %d duplicate observation keys (policy=%s)", duplicates, policy)
	}
	return out, nil
}

func (d *Dataset) index() {
	countries := make(map[string]struct{})
	years := make(map[int]struct{})
	activities := make(map[string]struct{})

	for _, o := range d.rows {
		countries[o.Country] = struct{}{}
		years[o.Year] = struct{}{}
		activities[o.ActivityGroup] = struct{}{}
	}

	d.countries = sortedKeys(countries)
	d.activities = sortedKeys(activities)
	d.years = make([]int, 0, len(years))
	for y := range years {
		d.years = append(d.years, y)
	}
	sort.Ints(d.years)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of rows
func (d *Dataset) Len() int { return len(d.rows) }

// Countries returns the sorted distinct countries
func (d *Dataset) Countries() []string { return append([]string(nil), d.countries...) }

// Years returns the sorted distinct years
func (d *Dataset) Years() []int { return append([]int(nil), d.years...) }

// Activities returns the sorted distinct activity groups
func (d *Dataset) Activities() []string { return append([]string(nil), d.activities...) }

// HasCountry reports whether country occurs in the dataset
func (d *Dataset) HasCountry(country string) bool { return containsString(d.countries, country) }

// HasActivity reports whether activity occurs in the dataset
func (d *Dataset) HasActivity(activity string) bool { return containsString(d.activities, activity) }

// HasYear reports whether year occurs in the dataset
func (d *Dataset) HasYear(year int) bool {
	i := sort.SearchInts(d.years, year)
	return i < len(d.years) && d.years[i] == year
}

func containsString(sorted []string, s string) bool {
	i := sort.SearchStrings(sorted, s)
	return i < len(sorted) && sorted[i] == s
}

// Where returns a read-only view of the rows matching pred, in dataset order
func (d *Dataset) Where(pred func(models.Observation) bool) View {
	indices := make([]int, 0)
	for i, o := range d.rows {
		if pred(o) {
			indices = append(indices, i)
		}
	}
	return View{parent: d, indices: indices}
}

// View is a filtered subset of a Dataset. It holds indices into the parent,
// never a copy of the rows.
type View struct {
	parent  *Dataset
	indices []int
}

// Len returns the number of rows in the view
func (v View) Len() int { return len(v.indices) }

// At returns the i-th row of the view
func (v View) At(i int) models.Observation { return v.parent.rows[v.indices[i]] }

// Rows materializes the view as a fresh slice; callers may modify it freely
func (v View) Rows() []models.Observation {
	rows := make([]models.Observation, len(v.indices))
	for i, idx := range v.indices {
		rows[i] = v.parent.rows[idx]
	}
	return rows
}

// Values returns the value column of the view
func (v View) Values() []float64 {
	values := make([]float64, len(v.indices))
	for i, idx := range v.indices {
		values[i] = v.parent.rows[idx].Value
	}
	return values
}
