package render

import (
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// themes map schema tags to the visual theme hint carried on the card.
// Unrecognized tags fall back to the neutral theme.
var themes = map[domain.SchemaKind]string{
	domain.SchemaBusiness:        "business",
	domain.SchemaRiskFactors:     "risk",
	domain.SchemaMDA:             "mdna",
	domain.SchemaBalanceSheet:    "financial",
	domain.SchemaIncomeStatement: "financial",
	domain.SchemaCashFlow:        "financial",
}

const neutralTheme = "neutral"

// Dispatch routes a sub-section to its specialized renderer, or to the
// generic structural renderer wrapped in a card shell when the schema
// is not one of the known six. It is total over schema tags: every
// input has a defined output path. The only possible error is a
// StructuralError from the generic path.
func Dispatch(sub domain.SubSection) (domain.Card, error) {
	switch sub.Schema {
	case domain.SchemaBusiness:
		return renderBusiness(sub.Record), nil
	case domain.SchemaRiskFactors:
		return renderRiskFactors(sub.Record), nil
	case domain.SchemaMDA:
		return renderMDA(sub.Record), nil
	case domain.SchemaBalanceSheet:
		return renderBalanceSheet(sub.Record), nil
	case domain.SchemaIncomeStatement:
		return renderIncomeStatement(sub.Record), nil
	case domain.SchemaCashFlow:
		return renderCashFlow(sub.Record), nil
	default:
		return renderGenericCard(sub)
	}
}

// renderGenericCard wraps the generic structural renderer in a plain
// card shell titled after the sub-section. The schema tag is used as a
// style hint only.
func renderGenericCard(sub domain.SubSection) (domain.Card, error) {
	card := domain.Card{
		Title: sub.Name,
		Theme: themeFor(sub.Schema),
	}

	if sub.Record.Kind != domain.KindRecord {
		block, err := RenderValue("analysis", sub.Record, 0)
		if err != nil {
			return domain.Card{}, err
		}
		if block != nil {
			card.Blocks = append(card.Blocks, *block)
		}
		return card, nil
	}

	for _, f := range sub.Record.Fields {
		block, err := RenderValue(f.Key, f.Value, 0)
		if err != nil {
			return domain.Card{}, err
		}
		if block == nil {
			continue
		}
		card.Blocks = append(card.Blocks, *block)
	}
	return card, nil
}

func themeFor(kind domain.SchemaKind) string {
	if theme, ok := themes[kind]; ok {
		return theme
	}
	return neutralTheme
}
