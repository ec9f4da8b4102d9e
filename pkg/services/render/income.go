package render

import (
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// Chart fallbacks when revenue or net income is absent or unparseable.
const (
	defaultRevenue   = 100
	defaultNetIncome = 20
)

// renderIncomeStatement lays out the income statement section: revenue
// and net income KPIs, the summary, the profitability narrative, and a
// two-point revenue vs net income bar chart.
func renderIncomeStatement(rec domain.Value) domain.Card {
	card := domain.Card{Title: "Income Statement", Theme: themeFor(domain.SchemaIncomeStatement)}

	if v := rec.GetString("total_revenue"); v != "" {
		card.KPIs = append(card.KPIs, domain.KPI{Label: "Revenue", Value: v})
	}
	if v := rec.GetString("net_income"); v != "" {
		card.KPIs = append(card.KPIs, domain.KPI{Label: "Net Income", Value: v})
	}

	if summary := rec.GetString("section_summary"); summary != "" {
		card.Blocks = append(card.Blocks, domain.Block{
			Kind:  domain.BlockParagraph,
			Label: "Summary",
			Body:  summary,
		})
	}

	profitability := domain.Block{Kind: domain.BlockGroup, Label: "Profitability"}
	for _, m := range []struct {
		key, label string
	}{
		{"gross_margin", "Gross Margin"},
		{"operating_margin", "Operating Margin"},
		{"net_margin", "Net Margin"},
	} {
		if v := rec.GetString(m.key); v != "" {
			profitability.Items = append(profitability.Items, domain.Block{
				Kind:  domain.BlockField,
				Label: m.label,
				Body:  v,
				Depth: 1,
			})
		}
	}
	if len(profitability.Items) > 0 {
		card.Blocks = append(card.Blocks, profitability)
	}

	revenue, _ := rec.Get("total_revenue")
	netIncome, _ := rec.Get("net_income")
	chart := domain.Chart{
		Kind:  domain.ChartBar,
		Title: "Revenue vs Net Income",
		Series: ToSeries([]SeriesEntry{
			{Label: "Revenue", Raw: revenue, Default: defaultRevenue},
			{Label: "Net Income", Raw: netIncome, Default: defaultNetIncome},
		}, SeriesOptions{DropNonPositive: true}),
	}
	if len(chart.Series) > 0 {
		card.Charts = append(card.Charts, chart)
	}

	return card
}
