package render

import (
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

const maxAdvantageBars = 5

// renderBusiness lays out the business analysis section: operational
// overview, key products, competitive advantages as opportunity
// insights, and a strength chart over the top advantages.
func renderBusiness(rec domain.Value) domain.Card {
	card := domain.Card{Title: "Business Analysis", Theme: themeFor(domain.SchemaBusiness)}

	if desc := rec.GetString("description"); desc != "" {
		card.Blocks = append(card.Blocks, domain.Block{
			Kind:  domain.BlockParagraph,
			Label: "Operational Overview",
			Body:  desc,
		})
	}
	if industry := rec.GetString("industry_classification"); industry != "" {
		card.Blocks = append(card.Blocks, domain.Block{
			Kind:  domain.BlockField,
			Label: "Industry",
			Body:  industry,
		})
	}
	if segments := rec.GetStrings("market_segments"); len(segments) > 0 {
		tags := domain.Block{
			Kind:  domain.BlockList,
			Label: "Market Segments",
			Count: len(segments),
		}
		for _, s := range segments {
			tags.Items = append(tags.Items, domain.Block{Kind: domain.BlockField, Body: s})
		}
		card.Blocks = append(card.Blocks, tags)
	}

	if products := rec.GetList("key_products"); len(products) > 0 {
		list := domain.Block{
			Kind:  domain.BlockList,
			Label: "Key Products",
			Count: len(products),
		}
		for _, p := range products {
			item := domain.Block{Kind: domain.BlockCard}
			if name := p.GetString("name"); name != "" {
				item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Name", Body: name})
			}
			if desc := p.GetString("description"); desc != "" {
				item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Description", Body: desc})
			}
			if sig := p.GetString("significance"); sig != "" {
				item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Significance", Body: sig})
			}
			list.Items = append(list.Items, item)
		}
		card.Blocks = append(card.Blocks, list)
	}

	advantages := advantageTexts(rec.GetList("competitive_advantages"))
	for _, adv := range advantages {
		card.Insights = append(card.Insights, domain.Insight{
			Title:     "Competitive Advantage",
			Body:      adv,
			Type:      "opportunity",
			Priority:  "high",
			Sentiment: "positive",
		})
	}

	if chart := advantageChart(advantages); len(chart.Series) > 0 {
		card.Charts = append(card.Charts, chart)
	}

	return card
}

// advantageTexts accepts both bare strings and structured advantage
// records, same union handling as risk factors.
func advantageTexts(list []domain.Value) []string {
	var out []string
	for _, v := range list {
		switch v.Kind {
		case domain.KindString:
			if v.Str != "" {
				out = append(out, v.Str)
			}
		case domain.KindRecord:
			if adv := v.GetString("advantage"); adv != "" {
				out = append(out, adv)
			} else if desc := v.GetString("description"); desc != "" {
				out = append(out, desc)
			}
		}
	}
	return out
}

// advantageChart maps up to five advantages to a bar series. The
// strength score is rank-based so the chart is stable across renders:
// the first advantage scores 100 and each subsequent one 10 less.
func advantageChart(advantages []string) domain.Chart {
	n := len(advantages)
	if n > maxAdvantageBars {
		n = maxAdvantageBars
	}

	entries := make([]SeriesEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, SeriesEntry{
			Label: advantages[i],
			Raw:   domain.Number(float64(100 - 10*i)),
			Color: Palette[i%maxAdvantageBars],
		})
	}

	return domain.Chart{
		Kind:   domain.ChartBar,
		Title:  "Competitive Strengths",
		Series: ToSeries(entries, SeriesOptions{}),
	}
}
