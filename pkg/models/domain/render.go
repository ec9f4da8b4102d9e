package domain

// BlockKind discriminates display block shapes.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph" // labeled heading + body text
	BlockList      BlockKind = "list"      // labeled, counted list of item blocks
	BlockGroup     BlockKind = "group"     // labeled container of nested blocks
	BlockField     BlockKind = "field"     // inline label/value pair
	BlockCard      BlockKind = "card"      // flattened record inside a list
)

// Block is one node of the rendered display tree.
type Block struct {
	Kind  BlockKind
	Label string
	Body  string
	Count int // list element count, list blocks only
	Depth int
	Items []Block
}

// ChartKind selects the chart shape handed to the drawing collaborator.
type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// SeriesPoint is one normalized chart entry. Value is always finite
// and Color is always assigned.
type SeriesPoint struct {
	Name     string
	Value    float64
	Color    string
	Metadata map[string]string
}

// Chart is a titled series ready for the charting collaborator.
type Chart struct {
	Kind   ChartKind
	Title  string
	Series []SeriesPoint
}

// KPI is a single headline figure card.
type KPI struct {
	Label string
	Value string
}

// Metric is one entry of the financial metrics grid, passed through to
// the external grid collaborator without layout logic.
type Metric struct {
	Label     string
	Value     string
	Direction string
}

// Insight is a tagged highlight derived from the analysis.
type Insight struct {
	Title     string
	Body      string
	Type      string
	Priority  string
	Sentiment string
}

// Badge is a short classified label, e.g. the MD&A outlook badge.
type Badge struct {
	Label string
	Color string
}

// Card is the rendered output of one sub-section: the shell handed to
// the presentation layer.
type Card struct {
	Title    string
	Theme    string
	Blocks   []Block
	KPIs     []KPI
	Metrics  []Metric
	Insights []Insight
	Badges   []Badge
	Charts   []Chart
}

// RenderedSection is one filing section after dispatch of all its
// sub-sections.
type RenderedSection struct {
	Name             string
	DisplayName      string
	OverallSentiment float64
	CriticalFindings []string
	Expanded         bool
	SubSections      []Card
}

// RenderedFiling is the full render pass output. Placeholder is set
// instead of Sections when the filing carries no analysis.
type RenderedFiling struct {
	Accession   string
	Ticker      string
	FilingType  string
	Placeholder string
	Sections    []RenderedSection
}
