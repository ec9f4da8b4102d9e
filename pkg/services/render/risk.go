package render

import (
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// severityColors are fixed per tier; they are not drawn from the
// palette cycle.
var severityColors = map[domain.Severity]string{
	domain.SeverityCritical: "#ef4444",
	domain.SeverityHigh:     "#f97316",
	domain.SeverityMedium:   "#eab308",
	domain.SeverityLow:      "#6b7280",
}

// severityOrder fixes the series order of the severity pie chart.
var severityOrder = []domain.Severity{
	domain.SeverityCritical,
	domain.SeverityHigh,
	domain.SeverityMedium,
	domain.SeverityLow,
}

// renderRiskFactors lays out the risk factor section: executive
// summary, the risk list, and a pie chart grouping factors by
// severity tier.
func renderRiskFactors(rec domain.Value) domain.Card {
	card := domain.Card{Title: "Risk Factors", Theme: themeFor(domain.SchemaRiskFactors)}

	if summary := rec.GetString("executive_summary"); summary != "" {
		card.Blocks = append(card.Blocks, domain.Block{
			Kind:  domain.BlockParagraph,
			Label: "Executive Summary",
			Body:  summary,
		})
	}

	factors := riskFactors(rec)
	if len(factors) > 0 {
		card.Blocks = append(card.Blocks, renderRiskList(factors))
		card.Charts = append(card.Charts, severityChart(factors))
	}

	return card
}

func riskFactors(rec domain.Value) []domain.RiskFactor {
	list := rec.GetList("risk_factors")
	factors := make([]domain.RiskFactor, 0, len(list))
	for _, v := range list {
		factors = append(factors, domain.RiskFactorFromValue(v))
	}
	return factors
}

// renderRiskList renders each factor as a card item. Legacy factors
// only carry a description; structured ones expose their optional
// fields, each suppressed when absent.
func renderRiskList(factors []domain.RiskFactor) domain.Block {
	list := domain.Block{
		Kind:  domain.BlockList,
		Label: "Risk Factors",
		Count: len(factors),
	}

	for _, rf := range factors {
		item := domain.Block{Kind: domain.BlockCard}
		if rf.RiskName != "" {
			item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Risk", Body: rf.RiskName})
		}
		if rf.Description != "" {
			item.Items = append(item.Items, domain.Block{Kind: domain.BlockParagraph, Body: rf.Description})
		}
		item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Severity", Body: string(rf.Severity)})
		if rf.Category != "" {
			item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Category", Body: rf.Category})
		}
		if rf.Probability != "" {
			item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Probability", Body: rf.Probability})
		}
		if rf.PotentialImpact != "" {
			item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Potential Impact", Body: rf.PotentialImpact})
		}
		if rf.Timeline != "" {
			item.Items = append(item.Items, domain.Block{Kind: domain.BlockField, Label: "Timeline", Body: rf.Timeline})
		}
		if len(rf.Mitigations) > 0 {
			mit := domain.Block{Kind: domain.BlockList, Label: "Mitigation Measures", Count: len(rf.Mitigations)}
			for _, m := range rf.Mitigations {
				mit.Items = append(mit.Items, domain.Block{Kind: domain.BlockField, Body: m})
			}
			item.Items = append(item.Items, mit)
		}
		list.Items = append(list.Items, item)
	}

	return list
}

// severityChart counts factors per severity tier. Tiers with no
// factors produce no slice.
func severityChart(factors []domain.RiskFactor) domain.Chart {
	counts := make(map[domain.Severity]int)
	for _, rf := range factors {
		counts[rf.Severity]++
	}

	chart := domain.Chart{Kind: domain.ChartPie, Title: "Risks by Severity"}
	for _, sev := range severityOrder {
		n := counts[sev]
		if n == 0 {
			continue
		}
		chart.Series = append(chart.Series, domain.SeriesPoint{
			Name:  string(sev),
			Value: float64(n),
			Color: severityColors[sev],
		})
	}
	return chart
}
