package models

// VegaLiteSchema is the schema URL stamped on every chart description
const VegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"

// Mark types
const (
	MarkRect = "rect"
	MarkLine = "line"
	MarkBar  = "bar"
)

// Field types
const (
	Quantitative = "quantitative"
	Nominal      = "nominal"
)

// ChartSpec represents a declarative chart description in Vega-Lite shape.
// It carries no pixels; a charting engine renders it.
type ChartSpec struct {
	Schema   string    `json:"$schema"`
	Title    string    `json:"title"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Mark     Mark      `json:"mark"`
	Encoding Encoding  `json:"encoding"`
	Data     ChartData `json:"data"`
}

// Mark represents the graphical primitive of a chart
type Mark struct {
	Type string `json:"type"`
}

// Encoding maps data fields to visual channels
type Encoding struct {
	X       Channel   `json:"x"`
	Y       Channel   `json:"y"`
	Color   Channel   `json:"color"`
	Tooltip []Channel `json:"tooltip,omitempty"`
}

// Channel represents a single field-to-channel mapping
type Channel struct {
	Field     string `json:"field"`
	Type      string `json:"type"` // quantitative, nominal
	Title     string `json:"title,omitempty"`
	Aggregate string `json:"aggregate,omitempty"` // sum
	Stack     string `json:"stack,omitempty"`     // normalize
	Format    string `json:"format,omitempty"`    // d3 format, e.g. ".2f"
	Bin       *Bin   `json:"bin,omitempty"`
	Scale     *Scale `json:"scale,omitempty"`
}

// Bin represents binning of a quantitative field
type Bin struct {
	MaxBins int `json:"maxbins"`
}

// Scale represents a color scale
type Scale struct {
	Scheme string `json:"scheme"`
}

// ChartData holds the inline rows of a chart
type ChartData struct {
	Values []Observation `json:"values"`
}
