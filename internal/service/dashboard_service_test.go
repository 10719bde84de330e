package service

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jengzang/life-rhythms-go/internal/dataset"
	"github.com/jengzang/life-rhythms-go/internal/mapper"
	"github.com/jengzang/life-rhythms-go/internal/models"
	"github.com/jengzang/life-rhythms-go/internal/render"
)

func newService(t *testing.T) *DashboardService {
	t.Helper()

	var rows []models.Observation
	for _, country := range []string{"Spain", "Finland"} {
		for _, year := range []int{2000, 2010} {
			for h := 0; h < 24; h++ {
				rows = append(rows,
					models.Observation{Country: country, Year: year, Hour: float64(h), TimeLabel: "slot",
						ActivityGroup: "Sleep", Value: 40},
					models.Observation{Country: country, Year: year, Hour: float64(h), TimeLabel: "slot",
						ActivityGroup: "Leisure", Value: 60},
				)
			}
		}
	}
	ds, err := dataset.New(rows, dataset.DuplicatesAllow)
	require.NoError(t, err)
	return NewDashboardService(ds, 8)
}

func TestOptionsDefaults(t *testing.T) {
	s := newService(t)

	opts := s.Options()
	require.Equal(t, []string{"Finland", "Spain"}, opts.Countries)
	require.Equal(t, []int{2000, 2010}, opts.Years)
	require.Equal(t, models.Selection{Country: "Finland", Year: 2000, Activity: "Leisure", Hour: 8}, s.DefaultSelection())
	require.Equal(t, 192, s.Rows())
}

func TestDashboardBuildsFourViews(t *testing.T) {
	s := newService(t)

	d, err := s.Dashboard(s.DefaultSelection())
	require.NoError(t, err)
	require.Len(t, d.Views, len(mapper.ViewIDs))
	for i, v := range d.Views {
		require.Equal(t, mapper.ViewIDs[i], v.ID)
	}
}

func TestViewErrors(t *testing.T) {
	s := newService(t)

	_, err := s.View("pie", s.DefaultSelection())
	require.ErrorIs(t, err, mapper.ErrUnknownView)

	sel := s.DefaultSelection()
	sel.Country = "Atlantis"
	_, err = s.View(mapper.ViewDailyRhythm, sel)
	require.ErrorIs(t, err, mapper.ErrInvalidFilterValue)

	_, err = s.Dashboard(sel)
	require.ErrorIs(t, err, mapper.ErrInvalidFilterValue)
}

func TestPreview(t *testing.T) {
	s := newService(t)

	var buf bytes.Buffer
	require.NoError(t, s.Preview(mapper.ViewCountryComparison, s.DefaultSelection(), &buf))
	_, err := png.DecodeConfig(&buf)
	require.NoError(t, err)

	buf.Reset()
	err = s.Preview(mapper.ViewDailyRhythm, s.DefaultSelection(), &buf)
	require.ErrorIs(t, err, render.ErrUnsupportedMark)
}
