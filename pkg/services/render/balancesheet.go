package render

import (
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

const (
	maxRatioCards = 4
	maxRatioBars  = 6
)

// renderBalanceSheet lays out the balance sheet section: KPI cards for
// the totals that are present, the summary paragraph, ratio cards, and
// a bar chart over the leading ratios.
func renderBalanceSheet(rec domain.Value) domain.Card {
	card := domain.Card{Title: "Balance Sheet", Theme: themeFor(domain.SchemaBalanceSheet)}

	for _, kpi := range []struct {
		key, label string
	}{
		{"total_assets", "Total Assets"},
		{"total_liabilities", "Total Liabilities"},
		{"total_equity", "Total Equity"},
	} {
		if v := rec.GetString(kpi.key); v != "" {
			card.KPIs = append(card.KPIs, domain.KPI{Label: kpi.label, Value: v})
		}
	}

	if summary := rec.GetString("section_summary"); summary != "" {
		card.Blocks = append(card.Blocks, domain.Block{
			Kind:  domain.BlockParagraph,
			Label: "Summary",
			Body:  summary,
		})
	}

	ratios := rec.GetList("key_ratios")

	if len(ratios) > 0 {
		n := len(ratios)
		if n > maxRatioCards {
			n = maxRatioCards
		}
		list := domain.Block{Kind: domain.BlockList, Label: "Key Ratios", Count: n}
		for _, r := range ratios[:n] {
			item := domain.Block{Kind: domain.BlockCard}
			if name := r.GetString("ratio_name"); name != "" {
				item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Ratio", Body: name})
			}
			if v := r.GetString("current_value"); v != "" {
				item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Value", Body: v})
			}
			if interp := r.GetString("interpretation"); interp != "" {
				item.Items = append(item.Items, domain.Block{Kind: domain.BlockParagraph, Body: interp})
			}
			list.Items = append(list.Items, item)
		}
		card.Blocks = append(card.Blocks, list)
	}

	if chart := ratioChart(ratios); len(chart.Series) > 0 {
		card.Charts = append(card.Charts, chart)
	}

	return card
}

// ratioChart coerces up to six ratio display values into a bar series.
// Values like "1.85x" or "45%" reduce to their numeric part; anything
// unparseable charts as 0.
func ratioChart(ratios []domain.Value) domain.Chart {
	n := len(ratios)
	if n > maxRatioBars {
		n = maxRatioBars
	}

	entries := make([]SeriesEntry, 0, n)
	for _, r := range ratios[:n] {
		name := r.GetString("ratio_name")
		if name == "" {
			continue
		}
		raw, _ := r.Get("current_value")
		entries = append(entries, SeriesEntry{Label: name, Raw: raw})
	}

	return domain.Chart{
		Kind:   domain.ChartBar,
		Title:  "Key Ratios",
		Series: ToSeries(entries, SeriesOptions{}),
	}
}
