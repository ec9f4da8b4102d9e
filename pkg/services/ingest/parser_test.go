package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

const samplePayload = `{
  "accession_number": "0000320193-24-000123",
  "ticker": "AAPL",
  "filing_type": "10-K",
  "filed_at": "2024-11-01T16:30:00Z",
  "executive_summary": "Strong year across segments.",
  "sections": [
    {
      "section_name": "Item 1 - Business",
      "overall_sentiment": 0.72,
      "critical_findings": ["Product concentration"],
      "sub_sections": [
        {
          "schema_type": "BusinessAnalysisSection",
          "sub_section_name": "Business Analysis",
          "analysis": {
            "zebra": "first",
            "apple": "second",
            "middle": "third"
          }
        }
      ]
    }
  ]
}`

func TestParsePayload(t *testing.T) {
	filing, err := ParsePayload([]byte(samplePayload))
	require.NoError(t, err)

	assert.Equal(t, "0000320193-24-000123", filing.Accession)
	assert.Equal(t, "AAPL", filing.Ticker)
	assert.Equal(t, "10-K", filing.FilingType)
	assert.Equal(t, "Strong year across segments.", filing.Summary)
	assert.Equal(t, time.Date(2024, 11, 1, 16, 30, 0, 0, time.UTC), filing.FiledAt)

	require.Len(t, filing.Sections, 1)
	section := filing.Sections[0]
	assert.Equal(t, "Item 1 - Business", section.Name)
	assert.Equal(t, 0.72, section.OverallSentiment)
	assert.Equal(t, []string{"Product concentration"}, section.CriticalFindings)

	require.Len(t, section.SubSections, 1)
	sub := section.SubSections[0]
	assert.Equal(t, domain.SchemaBusiness, sub.Schema)
	assert.Equal(t, "BusinessAnalysisSection", sub.SchemaTag)
	assert.Equal(t, "Business Analysis", sub.Name)
	// Absent parent_section inherits the enclosing section.
	assert.Equal(t, "Item 1 - Business", sub.ParentSection)

	// Analysis fields keep their source order, not lexical order.
	require.Len(t, sub.Record.Fields, 3)
	assert.Equal(t, "zebra", sub.Record.Fields[0].Key)
	assert.Equal(t, "apple", sub.Record.Fields[1].Key)
	assert.Equal(t, "middle", sub.Record.Fields[2].Key)
}

func TestParsePayload_RepairsMalformedJSON(t *testing.T) {
	// Trailing comma and unquoted key, typical LLM output defects.
	raw := `{"accession_number": "0001-25-000001", ticker: "MSFT", "sections": [],}`

	filing, err := ParsePayload([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "0001-25-000001", filing.Accession)
	assert.Equal(t, "MSFT", filing.Ticker)
	assert.Empty(t, filing.Sections)
}

func TestParsePayload_RejectsNonObject(t *testing.T) {
	_, err := ParsePayload([]byte(`["not", "an", "object"]`))
	require.Error(t, err)
}

func TestParsePayload_SentimentClampedToUnitInterval(t *testing.T) {
	raw := `{"sections": [
      {"section_name": "A", "overall_sentiment": 1.4},
      {"section_name": "B", "overall_sentiment": -0.2}
    ]}`

	filing, err := ParsePayload([]byte(raw))
	require.NoError(t, err)
	require.Len(t, filing.Sections, 2)
	assert.Equal(t, 1.0, filing.Sections[0].OverallSentiment)
	assert.Equal(t, 0.0, filing.Sections[1].OverallSentiment)
}

func TestParsePayload_ExplicitParentSectionWins(t *testing.T) {
	raw := `{"sections": [{
      "section_name": "Item 8 - Financial Statements and Supplementary Data",
      "sub_sections": [{
        "schema_type": "BalanceSheetAnalysisSection",
        "sub_section_name": "Balance Sheet",
        "parent_section": "Financials",
        "analysis": {}
      }]
    }]}`

	filing, err := ParsePayload([]byte(raw))
	require.NoError(t, err)
	sub := filing.Sections[0].SubSections[0]
	assert.Equal(t, "Financials", sub.ParentSection)
	assert.Equal(t, domain.SchemaBalanceSheet, sub.Schema)
}

func TestParsePayload_BadFiledAtIgnored(t *testing.T) {
	raw := `{"accession_number": "x", "filed_at": "November 1st"}`

	filing, err := ParsePayload([]byte(raw))
	require.NoError(t, err)
	assert.True(t, filing.FiledAt.IsZero())
}
