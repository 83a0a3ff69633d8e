package schema

// ChartSpec is the engine's declarative output: everything an external
// renderer needs to draw the chart, and nothing about how to draw it.
// A fresh value is constructed on every invocation and carries no identity
// across calls.
type ChartSpec struct {
	Title       string      `json:"title"`
	Type        ChartType   `json:"type,omitempty"`
	Axes        []Axis      `json:"axes,omitempty"`
	Legend      Legend      `json:"legend"`
	Series      []Series    `json:"series"`
	ColorScale  *ColorScale `json:"colorScale,omitempty"`
	Placeholder bool        `json:"placeholder,omitempty"`
}

// Axis describes one chart axis. Labels is populated for categorical axes
// only, in render order.
type Axis struct {
	Kind   AxisKind `json:"kind"`
	Name   string   `json:"name,omitempty"`
	Labels []string `json:"labels,omitempty"`

	// Secondary marks an axis rendered opposite the primary one, used by
	// multi-axis correlation views.
	Secondary bool `json:"secondary,omitempty"`
}

// Legend lists the series names the renderer should show.
type Legend struct {
	Show    bool     `json:"show"`
	Entries []string `json:"entries,omitempty"`
}

// ColorScale is the numeric range for heatmap coloring.
type ColorScale struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Series is one named data trace. Exactly one of the payload fields is
// populated, matching the render family:
//   - Values: line/bar families aligned with a categorical axis
//   - Pairs:  pie/treemap/sunburst name-value items
//   - Cells:  heatmap row-column-count triples
//   - Boxes:  boxplot five-number summaries per category
type Series struct {
	Name   string       `json:"name"`
	Family RenderFamily `json:"family"`

	// Stack is a shared identifier; series with equal non-empty stacks are
	// summed visually by the renderer.
	Stack string `json:"stack,omitempty"`

	// Fill distinguishes area charts within the line family.
	Fill bool `json:"fill,omitempty"`

	// DonutHole distinguishes donut charts within the pie family.
	DonutHole bool `json:"donutHole,omitempty"`

	// AxisIndex binds the series to one of the spec's value axes.
	AxisIndex int `json:"axisIndex,omitempty"`

	Values []float64     `json:"values,omitempty"`
	Pairs  []NameValue   `json:"pairs,omitempty"`
	Cells  []HeatmapCell `json:"cells,omitempty"`
	Boxes  []BoxItem     `json:"boxes,omitempty"`
}

// NameValue is a single named datum for part-to-whole families.
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// HeatmapCell is one cell of a density grid: a time bucket crossed with a
// location or category value.
type HeatmapCell struct {
	Time     string `json:"time"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// BoxSummary is a five-number summary: the basis of one boxplot glyph.
type BoxSummary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// BoxItem pairs a category with its five-number summary.
type BoxItem struct {
	Category string     `json:"category"`
	Summary  BoxSummary `json:"summary"`
}
