package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

func subSection(tag, name string, record domain.Value) domain.SubSection {
	return domain.SubSection{
		Schema:    domain.ParseSchemaKind(tag),
		SchemaTag: tag,
		Name:      name,
		Record:    record,
	}
}

func TestDispatch_Total(t *testing.T) {
	record := domain.Record(
		domain.Field{Key: "summary", Value: domain.String("test")},
	)

	tags := []string{
		"BusinessAnalysisSection",
		"RiskFactorsAnalysisSection",
		"MDAAnalysisSection",
		"BalanceSheetAnalysisSection",
		"IncomeStatementAnalysisSection",
		"CashFlowAnalysisSection",
		"",
		"FooBarSection",
		"complete garbage !@#",
	}

	for _, tag := range tags {
		t.Run("tag "+tag, func(t *testing.T) {
			card, err := Dispatch(subSection(tag, "Sub", record))
			require.NoError(t, err)
			assert.NotEmpty(t, card.Title)
		})
	}
}

func TestDispatch_UnknownSchemaFallsBackToGenericCard(t *testing.T) {
	record := domain.Record(
		domain.Field{Key: "summary", Value: domain.String("test")},
	)

	card, err := Dispatch(subSection("FooBarSection", "Custom", record))
	require.NoError(t, err)

	assert.Equal(t, "Custom", card.Title)
	assert.Equal(t, neutralTheme, card.Theme)
	require.Len(t, card.Blocks, 1)
	assert.Equal(t, domain.BlockParagraph, card.Blocks[0].Kind)
	assert.Equal(t, "Summary", card.Blocks[0].Label)
	assert.Equal(t, "test", card.Blocks[0].Body)
}

func TestDispatch_KnownSchemaUsesItsTheme(t *testing.T) {
	card, err := Dispatch(subSection("RiskFactorsAnalysisSection", "Risks", domain.Record()))
	require.NoError(t, err)
	assert.Equal(t, "risk", card.Theme)
}

func TestDispatch_Idempotent(t *testing.T) {
	record := domain.Record(
		domain.Field{Key: "executive_summary", Value: domain.String("summary")},
		domain.Field{Key: "risk_factors", Value: domain.ListOf(
			domain.String("legacy risk"),
			domain.Record(
				domain.Field{Key: "description", Value: domain.String("structured risk")},
				domain.Field{Key: "severity", Value: domain.String("High")},
			),
		)},
	)
	sub := subSection("RiskFactorsAnalysisSection", "Risks", record)

	first, err := Dispatch(sub)
	require.NoError(t, err)
	second, err := Dispatch(sub)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDispatch_StructuralErrorSurfacesFromGenericPath(t *testing.T) {
	v := domain.String("leaf")
	for i := 0; i < maxDepth+2; i++ {
		v = domain.Record(domain.Field{Key: "level", Value: v})
	}

	_, err := Dispatch(subSection("FooBarSection", "Deep", v))
	require.Error(t, err)
}

func TestParseSchemaKind(t *testing.T) {
	assert.Equal(t, domain.SchemaBusiness, domain.ParseSchemaKind("BusinessAnalysisSection"))
	assert.Equal(t, domain.SchemaCashFlow, domain.ParseSchemaKind("CashFlowAnalysisSection"))
	assert.Equal(t, domain.SchemaUnknown, domain.ParseSchemaKind(""))
	assert.Equal(t, domain.SchemaUnknown, domain.ParseSchemaKind("NotASection"))
}
