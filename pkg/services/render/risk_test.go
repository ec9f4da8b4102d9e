package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

func riskRecord(factors ...domain.Value) domain.Value {
	return domain.Record(
		domain.Field{Key: "executive_summary", Value: domain.String("overall risk posture")},
		domain.Field{Key: "risk_factors", Value: domain.ListOf(factors...)},
	)
}

func structuredRisk(severity string) domain.Value {
	return domain.Record(
		domain.Field{Key: "risk_name", Value: domain.String("Some Risk")},
		domain.Field{Key: "description", Value: domain.String("details")},
		domain.Field{Key: "severity", Value: domain.String(severity)},
	)
}

func TestRenderRiskFactors_SeverityGrouping(t *testing.T) {
	// The last factor has no severity and defaults to Medium.
	rec := riskRecord(
		structuredRisk("Critical"),
		structuredRisk("High"),
		structuredRisk("High"),
		structuredRisk("Medium"),
		domain.String("legacy risk with no severity"),
	)

	card := renderRiskFactors(rec)
	require.Len(t, card.Charts, 1)

	series := card.Charts[0].Series
	require.Len(t, series, 3)

	assert.Equal(t, "Critical", series[0].Name)
	assert.Equal(t, float64(1), series[0].Value)
	assert.Equal(t, "#ef4444", series[0].Color)

	assert.Equal(t, "High", series[1].Name)
	assert.Equal(t, float64(2), series[1].Value)
	assert.Equal(t, "#f97316", series[1].Color)

	assert.Equal(t, "Medium", series[2].Name)
	assert.Equal(t, float64(2), series[2].Value)
	assert.Equal(t, "#eab308", series[2].Color)
}

func TestRenderRiskFactors_LegacyStringsSupported(t *testing.T) {
	rec := riskRecord(domain.String("supply chain exposure"))

	card := renderRiskFactors(rec)
	require.Len(t, card.Blocks, 2) // summary + list

	list := card.Blocks[1]
	assert.Equal(t, 1, list.Count)

	item := list.Items[0]
	require.NotEmpty(t, item.Items)
	assert.Equal(t, "supply chain exposure", item.Items[0].Body)
}

func TestRenderRiskFactors_OptionalFieldsSuppressed(t *testing.T) {
	rec := riskRecord(domain.Record(
		domain.Field{Key: "description", Value: domain.String("bare minimum")},
	))

	card := renderRiskFactors(rec)
	list := card.Blocks[1]
	item := list.Items[0]

	// Only the description and the defaulted severity render.
	require.Len(t, item.Items, 2)
	assert.Equal(t, "bare minimum", item.Items[0].Body)
	assert.Equal(t, "Severity", item.Items[1].Label)
	assert.Equal(t, "Medium", item.Items[1].Body)
}

func TestRenderRiskFactors_EmptyRecordRendersNothing(t *testing.T) {
	card := renderRiskFactors(domain.Record())
	assert.Empty(t, card.Blocks)
	assert.Empty(t, card.Charts)
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, domain.SeverityCritical, domain.ParseSeverity("critical"))
	assert.Equal(t, domain.SeverityHigh, domain.ParseSeverity("High"))
	assert.Equal(t, domain.SeverityLow, domain.ParseSeverity(" low "))
	assert.Equal(t, domain.SeverityMedium, domain.ParseSeverity(""))
	assert.Equal(t, domain.SeverityMedium, domain.ParseSeverity("whatever"))
}
