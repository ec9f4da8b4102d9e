package render

import (
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// Chart fallbacks for the three cash flow activities.
const (
	defaultOperating = 50
	defaultInvesting = 20
	defaultFinancing = 15
)

// renderCashFlow lays out the cash flow section: summary, KPI cards
// for the three activities, an optional free cash flow highlight, and
// a pie chart of activity magnitudes. Signs are folded away for the
// chart; investing outflows chart by their absolute size.
func renderCashFlow(rec domain.Value) domain.Card {
	card := domain.Card{Title: "Cash Flow", Theme: themeFor(domain.SchemaCashFlow)}

	if summary := rec.GetString("section_summary"); summary != "" {
		card.Blocks = append(card.Blocks, domain.Block{
			Kind:  domain.BlockParagraph,
			Label: "Summary",
			Body:  summary,
		})
	}

	for _, kpi := range []struct {
		key, label string
	}{
		{"operating_cash_flow", "Operating"},
		{"investing_cash_flow", "Investing"},
		{"financing_cash_flow", "Financing"},
	} {
		if v := rec.GetString(kpi.key); v != "" {
			card.KPIs = append(card.KPIs, domain.KPI{Label: kpi.label, Value: v})
		}
	}

	if fcf := rec.GetString("free_cash_flow"); fcf != "" {
		card.Insights = append(card.Insights, domain.Insight{
			Title:     "Free Cash Flow",
			Body:      fcf,
			Type:      "highlight",
			Priority:  "medium",
			Sentiment: "neutral",
		})
	}

	operating, _ := rec.Get("operating_cash_flow")
	investing, _ := rec.Get("investing_cash_flow")
	financing, _ := rec.Get("financing_cash_flow")
	chart := domain.Chart{
		Kind:  domain.ChartPie,
		Title: "Cash Flow Breakdown",
		Series: ToSeries([]SeriesEntry{
			{Label: "Operating", Raw: operating, Default: defaultOperating},
			{Label: "Investing", Raw: investing, Default: defaultInvesting},
			{Label: "Financing", Raw: financing, Default: defaultFinancing},
		}, SeriesOptions{Absolute: true, DropNonPositive: true}),
	}
	if len(chart.Series) > 0 {
		card.Charts = append(card.Charts, chart)
	}

	return card
}
