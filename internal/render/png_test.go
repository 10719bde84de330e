package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jengzang/life-rhythms-go/internal/dataset"
	"github.com/jengzang/life-rhythms-go/internal/mapper"
	"github.com/jengzang/life-rhythms-go/internal/models"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	var rows []models.Observation
	for _, country := range []string{"Belgium", "France"} {
		for _, year := range []int{2000, 2010} {
			for h := 0; h < 24; h++ {
				rows = append(rows,
					models.Observation{Country: country, Year: year, Hour: float64(h), TimeLabel: "slot",
						ActivityGroup: "Sleep", Value: float64(80 - 3*h)},
					models.Observation{Country: country, Year: year, Hour: float64(h), TimeLabel: "slot",
						ActivityGroup: "Work", Value: float64(h)},
				)
			}
		}
	}
	ds, err := dataset.New(rows, dataset.DuplicatesReject)
	require.NoError(t, err)
	return ds
}

func requirePNG(t *testing.T, buf *bytes.Buffer, width, height int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, width, cfg.Width)
	require.Equal(t, height, cfg.Height)
}

func TestPNGLineChart(t *testing.T) {
	v, err := mapper.CountryComparison(testDataset(t), "Sleep", 2000)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PNG(v.Chart, &buf))
	requirePNG(t, &buf, v.Chart.Width, v.Chart.Height)
}

func TestPNGStackedBars(t *testing.T) {
	v, err := mapper.CompositionAtHour(testDataset(t), 2010, 8)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PNG(v.Chart, &buf))
	requirePNG(t, &buf, v.Chart.Width, v.Chart.Height)

	sbc := stackedBars(v.Chart)
	require.True(t, sbc.IsHorizontal)
	require.Len(t, sbc.Bars, 2)
	for _, bar := range sbc.Bars {
		var total float64
		for _, val := range bar.Values {
			total += val.Value
		}
		require.InDelta(t, 1.0, total, 1e-9, bar.Name)
	}
}

func TestPNGEmptyDataIsBlank(t *testing.T) {
	spec := models.ChartSpec{Width: 700, Height: 320, Mark: models.Mark{Type: models.MarkLine}}

	var buf bytes.Buffer
	require.NoError(t, PNG(spec, &buf))
	requirePNG(t, &buf, 700, 320)
}

func TestPNGHeatmapUnsupported(t *testing.T) {
	v, err := mapper.DailyRhythm(testDataset(t), "Belgium", 2000)
	require.NoError(t, err)

	err = PNG(v.Chart, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUnsupportedMark)
}

func TestColorAtCyclesAndFallsBack(t *testing.T) {
	require.Equal(t, colorAt("set1", 0), colorAt("set1", len(palettes["set1"])))
	require.Equal(t, colorAt("tableau10", 3), colorAt("no-such-scheme", 3))
}
