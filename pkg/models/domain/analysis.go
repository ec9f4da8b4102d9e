package domain

import (
	"strings"
	"time"
)

// SchemaKind identifies which specialized shape a sub-section's record
// follows. Unknown tags are a defined case, never an error.
type SchemaKind int

const (
	SchemaUnknown SchemaKind = iota
	SchemaBusiness
	SchemaRiskFactors
	SchemaMDA
	SchemaBalanceSheet
	SchemaIncomeStatement
	SchemaCashFlow
)

var schemaNames = map[SchemaKind]string{
	SchemaBusiness:        "BusinessAnalysisSection",
	SchemaRiskFactors:     "RiskFactorsAnalysisSection",
	SchemaMDA:             "MDAAnalysisSection",
	SchemaBalanceSheet:    "BalanceSheetAnalysisSection",
	SchemaIncomeStatement: "IncomeStatementAnalysisSection",
	SchemaCashFlow:        "CashFlowAnalysisSection",
}

// ParseSchemaKind maps a schema tag to its kind. Every input string
// has a defined result; anything outside the known set is
// SchemaUnknown.
func ParseSchemaKind(tag string) SchemaKind {
	for kind, name := range schemaNames {
		if name == tag {
			return kind
		}
	}
	return SchemaUnknown
}

func (k SchemaKind) String() string {
	if name, ok := schemaNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Severity classifies a risk factor.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// ParseSeverity normalizes a severity string; missing or unrecognized
// severities default to Medium.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow
	case "high":
		return SeverityHigh
	case "critical":
		return SeverityCritical
	default:
		return SeverityMedium
	}
}

// RiskFactor is the tagged form of the legacy string-or-record union.
// Legacy marks factors that arrived as a bare description string; the
// split happens once at ingestion.
type RiskFactor struct {
	Legacy          bool
	Description     string
	RiskName        string
	Severity        Severity
	Category        string
	Probability     string
	PotentialImpact string
	Timeline        string
	Mitigations     []string
}

// RiskFactorFromValue disambiguates one element of a risk-factor list.
func RiskFactorFromValue(v Value) RiskFactor {
	if v.Kind == KindString {
		return RiskFactor{
			Legacy:      true,
			Description: v.Str,
			Severity:    SeverityMedium,
		}
	}
	return RiskFactor{
		Description:     v.GetString("description"),
		RiskName:        v.GetString("risk_name"),
		Severity:        ParseSeverity(v.GetString("severity")),
		Category:        v.GetString("category"),
		Probability:     v.GetString("probability"),
		PotentialImpact: v.GetString("potential_impact"),
		Timeline:        v.GetString("timeline"),
		Mitigations:     v.GetStrings("mitigation_measures"),
	}
}

// SubSection is one schema-tagged unit of analysis under a filing
// section.
type SubSection struct {
	Schema        SchemaKind
	SchemaTag     string // original tag, kept as a style hint for unknown schemas
	Name          string
	ParentSection string
	Record        Value
}

// Section is one top-level filing section with its analysis payload.
type Section struct {
	Name             string
	OverallSentiment float64 // 0.0 - 1.0
	CriticalFindings []string
	SubSections      []SubSection
}

// Filing is a fully ingested analysis payload.
type Filing struct {
	Accession  string
	Ticker     string
	FilingType string
	FiledAt    time.Time
	Summary    string
	Sections   []Section
}

// ExpandedSections tracks which sections are expanded, keyed by exact
// section name. It is owned by the presentation layer; the rendering
// core only reads it.
type ExpandedSections map[string]struct{}

func NewExpandedSections() ExpandedSections {
	return make(ExpandedSections)
}

// Toggle flips the expanded state for name.
func (e ExpandedSections) Toggle(name string) {
	if _, ok := e[name]; ok {
		delete(e, name)
		return
	}
	e[name] = struct{}{}
}

// Expanded reports whether name is currently expanded.
func (e ExpandedSections) Expanded(name string) bool {
	_, ok := e[name]
	return ok
}
