package api

import "time"

type FilingSummary struct {
	Accession  string    `json:"accession"`
	Ticker     string    `json:"ticker"`
	FilingType string    `json:"filing_type"`
	FiledAt    time.Time `json:"filed_at"`
}

type Block struct {
	Kind  string  `json:"kind"`
	Label string  `json:"label,omitempty"`
	Body  string  `json:"body,omitempty"`
	Count int     `json:"count,omitempty"`
	Depth int     `json:"depth,omitempty"`
	Items []Block `json:"items,omitempty"`
}

type SeriesPoint struct {
	Name     string            `json:"name"`
	Value    float64           `json:"value"`
	Color    string            `json:"color"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Chart struct {
	Kind   string        `json:"kind"`
	Title  string        `json:"title"`
	Series []SeriesPoint `json:"series"`
}

type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Metric struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Direction string `json:"direction,omitempty"`
}

type Insight struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	Sentiment string `json:"sentiment"`
}

type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type Card struct {
	Title    string    `json:"title"`
	Theme    string    `json:"theme,omitempty"`
	Blocks   []Block   `json:"blocks,omitempty"`
	KPIs     []KPI     `json:"kpis,omitempty"`
	Metrics  []Metric  `json:"metrics,omitempty"`
	Insights []Insight `json:"insights,omitempty"`
	Badges   []Badge   `json:"badges,omitempty"`
	Charts   []Chart   `json:"charts,omitempty"`
}

type RenderedSection struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name"`
	OverallSentiment float64  `json:"overall_sentiment"`
	CriticalFindings []string `json:"critical_findings,omitempty"`
	Expanded         bool     `json:"expanded"`
	SubSections      []Card   `json:"sub_sections"`
}

type RenderedFiling struct {
	Accession   string            `json:"accession"`
	Ticker      string            `json:"ticker"`
	FilingType  string            `json:"filing_type"`
	Placeholder string            `json:"placeholder,omitempty"`
	Sections    []RenderedSection `json:"sections"`
}

type SectionSummary struct {
	Name             string  `json:"name"`
	DisplayName      string  `json:"display_name"`
	OverallSentiment float64 `json:"overall_sentiment"`
	SubSectionCount  int     `json:"sub_section_count"`
}
