package schema

// Custom string types for type safety.
type (
	// Granularity represents the bucket size for time dimensions.
	Granularity string

	// ChartType represents a renderable chart kind.
	ChartType string

	// RenderFamily represents the render primitive a series maps to.
	RenderFamily string

	// AxisKind represents whether an axis is categorical or numeric.
	AxisKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for the event store.
	StoreBackend string

	// InputFormat represents the encoding of an event record input file.
	InputFormat string
)

// All time granularities supported.
const (
	HourGranularity  Granularity = "hour"
	DayGranularity   Granularity = "day" // default
	MonthGranularity Granularity = "month"
	YearGranularity  Granularity = "year"
)

// All chart types supported.
const (
	LineChart       ChartType = "line"
	BarChart        ChartType = "bar"
	PieChart        ChartType = "pie"
	DonutChart      ChartType = "donut"
	AreaChart       ChartType = "area"
	ScatterChart    ChartType = "scatter"
	StackedBarChart ChartType = "stacked_bar"
	GroupedBarChart ChartType = "grouped_bar"
	HeatmapChart    ChartType = "heatmap"
	TreemapChart    ChartType = "treemap"
	SunburstChart   ChartType = "sunburst"
	BoxplotChart    ChartType = "boxplot"
	MultiAxisChart  ChartType = "multi_axis"
)

// All render families the external renderer must support.
const (
	LineFamily     RenderFamily = "line"
	BarFamily      RenderFamily = "bar"
	PieFamily      RenderFamily = "pie"
	TreemapFamily  RenderFamily = "treemap"
	SunburstFamily RenderFamily = "sunburst"
	HeatmapFamily  RenderFamily = "heatmap"
	BoxplotFamily  RenderFamily = "boxplot"
)

// All axis kinds supported.
const (
	CategoryAxis AxisKind = "category"
	ValueAxis    AxisKind = "value"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// All input formats supported.
const (
	CSVInput  InputFormat = "csv" // default
	JSONInput InputFormat = "json"
)

// Cardinality limits applied during aggregation so a chart's legend and
// series count stay readable.
const (
	// MaxSingleDimensionKeys caps the categories of a one-dimension chart.
	MaxSingleDimensionKeys = 20

	// MaxPrimaryComparisonKeys caps the primary axis of a two-category comparison.
	MaxPrimaryComparisonKeys = 10

	// MaxSecondaryComparisonKeys caps the secondary axis of a two-category comparison.
	MaxSecondaryComparisonKeys = 8

	// MinBoxplotSamples is the minimum non-zero sample count for a category
	// to earn a boxplot glyph.
	MinBoxplotSamples = 5
)

// AllGranularities returns a list of all supported granularities.
var AllGranularities = []Granularity{HourGranularity, DayGranularity, MonthGranularity, YearGranularity}

// AllChartTypes returns a list of all supported chart types.
var AllChartTypes = []ChartType{
	LineChart, BarChart, PieChart, DonutChart, AreaChart, ScatterChart,
	StackedBarChart, GroupedBarChart, HeatmapChart, TreemapChart,
	SunburstChart, BoxplotChart, MultiAxisChart,
}

// ValidGranularities lists all valid granularities.
var ValidGranularities = map[Granularity]struct{}{
	HourGranularity:  {},
	DayGranularity:   {},
	MonthGranularity: {},
	YearGranularity:  {},
}

// ValidChartTypes lists all valid chart types.
var ValidChartTypes = map[ChartType]struct{}{
	LineChart:       {},
	BarChart:        {},
	PieChart:        {},
	DonutChart:      {},
	AreaChart:       {},
	ScatterChart:    {},
	StackedBarChart: {},
	GroupedBarChart: {},
	HeatmapChart:    {},
	TreemapChart:    {},
	SunburstChart:   {},
	BoxplotChart:    {},
	MultiAxisChart:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidInputFormats lists all valid input formats.
var ValidInputFormats = map[InputFormat]struct{}{
	CSVInput:  {},
	JSONInput: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
