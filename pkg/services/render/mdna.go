package render

import (
	"strings"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// renderMDA lays out management's discussion and analysis: executive
// overview, the financial metrics grid pass-through, and the outlook
// block with its sentiment badge.
func renderMDA(rec domain.Value) domain.Card {
	card := domain.Card{Title: "Management Discussion & Analysis", Theme: themeFor(domain.SchemaMDA)}

	if overview := rec.GetString("executive_overview"); overview != "" {
		card.Blocks = append(card.Blocks, domain.Block{
			Kind:  domain.BlockParagraph,
			Label: "Executive Overview",
			Body:  overview,
		})
	}

	// Metrics are handed to the external grid collaborator untouched
	// beyond field extraction.
	for _, m := range rec.GetList("key_financial_metrics") {
		if m.Kind != domain.KindRecord {
			continue
		}
		label := m.GetString("metric_name")
		if label == "" {
			continue
		}
		card.Metrics = append(card.Metrics, domain.Metric{
			Label:     label,
			Value:     m.GetString("current_value"),
			Direction: m.GetString("direction"),
		})
	}

	if outlook := rec.GetString("outlook_summary"); outlook != "" {
		card.Blocks = append(card.Blocks, domain.Block{
			Kind:  domain.BlockParagraph,
			Label: "Outlook",
			Body:  outlook,
		})
	}
	if sentiment := rec.GetString("outlook_sentiment"); sentiment != "" {
		card.Badges = append(card.Badges, domain.Badge{
			Label: sentiment,
			Color: outlookColor(sentiment),
		})
	}

	return card
}

// outlookColor classifies the outlook sentiment into one of four badge
// colors; anything unrecognized is gray.
func outlookColor(sentiment string) string {
	switch strings.ToLower(strings.TrimSpace(sentiment)) {
	case "positive", "optimistic":
		return "#22c55e"
	case "negative":
		return "#ef4444"
	case "cautious":
		return "#f97316"
	default:
		return "#6b7280"
	}
}
