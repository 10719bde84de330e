// Package render draws PNG previews of chart descriptions with go-chart.
// The browser renders the interactive charts; previews serve links,
// thumbnails and clients without JavaScript.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sort"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/jengzang/life-rhythms-go/internal/dataset"
	"github.com/jengzang/life-rhythms-go/internal/models"
)

// ErrUnsupportedMark is returned for marks go-chart cannot draw (rect heatmaps)
var ErrUnsupportedMark = errors.New("render: unsupported mark")

// PNG writes a preview of spec to w
func PNG(spec models.ChartSpec, w io.Writer) error {
	switch spec.Mark.Type {
	case models.MarkLine:
		if len(spec.Data.Values) == 0 {
			return blank(spec, w)
		}
		return lineChart(spec, w)
	case models.MarkBar:
		if len(spec.Data.Values) == 0 {
			return blank(spec, w)
		}
		return stackedBarChart(spec, w)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMark, spec.Mark.Type)
	}
}

func lineChart(spec models.ChartSpec, w io.Writer) error {
	groups, order := groupBy(spec.Data.Values, spec.Encoding.Color.Field)

	series := make([]chart.Series, 0, len(order))
	for i, name := range order {
		rows := groups[name]
		sort.SliceStable(rows, func(a, b int) bool { return rows[a].Hour < rows[b].Hour })

		xs := make([]float64, len(rows))
		ys := make([]float64, len(rows))
		for j, o := range rows {
			xs[j] = o.Hour
			ys[j] = o.Value
		}

		col := colorAt(schemeOf(spec.Encoding.Color), i)
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
			},
		})
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      spec.Width,
		Height:     spec.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  spec.Encoding.X.Title,
			Range: &chart.ContinuousRange{Min: 0, Max: 24},
		},
		YAxis: chart.YAxis{
			Name:  spec.Encoding.Y.Title,
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render line chart: %w", err)
	}
	return nil
}

func stackedBarChart(spec models.ChartSpec, w io.Writer) error {
	sbc := stackedBars(spec)
	if err := sbc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// stackedBars lays out one horizontal bar per y value (country) stacked by
// the color field, summing the x field. Normalized stacks are scaled to 1 per bar.
func stackedBars(spec models.ChartSpec) chart.StackedBarChart {
	bars, order := groupBy(spec.Data.Values, spec.Encoding.Y.Field)

	// Stable color per stack key across bars
	keySet := map[string]bool{}
	for _, o := range spec.Data.Values {
		keySet[fieldValue(o, spec.Encoding.Color.Field)] = true
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	colorIndex := make(map[string]int, len(keys))
	for i, k := range keys {
		colorIndex[k] = i
	}

	stacked := make([]chart.StackedBar, 0, len(order))
	for _, name := range order {
		sums := map[string]float64{}
		var total float64
		for _, o := range bars[name] {
			sums[fieldValue(o, spec.Encoding.Color.Field)] += o.Value
			total += o.Value
		}

		values := make([]chart.Value, 0, len(sums))
		for _, k := range keys {
			v, ok := sums[k]
			if !ok {
				continue
			}
			if spec.Encoding.X.Stack == "normalize" && total > 0 {
				v /= total
			}
			values = append(values, chart.Value{
				Label: k,
				Value: v,
				Style: chart.Style{
					FillColor:   colorAt(schemeOf(spec.Encoding.Color), colorIndex[k]),
					StrokeColor: colorAt(schemeOf(spec.Encoding.Color), colorIndex[k]),
				},
			})
		}
		stacked = append(stacked, chart.StackedBar{Name: name, Values: values})
	}

	return chart.StackedBarChart{
		Title:        spec.Title,
		Width:        spec.Width,
		Height:       spec.Height,
		Background:   chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		BarSpacing:   24,
		IsHorizontal: true,
		Bars:         stacked,
	}
}

// groupBy splits rows by field value; order is sorted for deterministic output
func groupBy(rows []models.Observation, field string) (map[string][]models.Observation, []string) {
	groups := make(map[string][]models.Observation)
	for _, o := range rows {
		k := fieldValue(o, field)
		groups[k] = append(groups[k], o)
	}
	order := make([]string, 0, len(groups))
	for k := range groups {
		order = append(order, k)
	}
	sort.Strings(order)
	return groups, order
}

func fieldValue(o models.Observation, field string) string {
	switch field {
	case dataset.ColCountry:
		return o.Country
	case dataset.ColYear:
		return strconv.Itoa(o.Year)
	case dataset.ColActivityGroup:
		return o.ActivityGroup
	case dataset.ColTimeLabel:
		return o.TimeLabel
	default:
		return ""
	}
}

func schemeOf(c models.Channel) string {
	if c.Scale == nil {
		return ""
	}
	return c.Scale.Scheme
}

// blank writes an empty white image of the chart's size
func blank(spec models.ChartSpec, w io.Writer) error {
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return png.Encode(w, img)
}
