package adapters

import (
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/api"
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/store"
)

func MapRenderedFilingDomainToApi(f domain.RenderedFiling) api.RenderedFiling {
	out := api.RenderedFiling{
		Accession:   f.Accession,
		Ticker:      f.Ticker,
		FilingType:  f.FilingType,
		Placeholder: f.Placeholder,
	}
	for _, s := range f.Sections {
		out.Sections = append(out.Sections, MapRenderedSectionDomainToApi(s))
	}
	return out
}

func MapRenderedSectionDomainToApi(s domain.RenderedSection) api.RenderedSection {
	out := api.RenderedSection{
		Name:             s.Name,
		DisplayName:      s.DisplayName,
		OverallSentiment: s.OverallSentiment,
		CriticalFindings: s.CriticalFindings,
		Expanded:         s.Expanded,
	}
	for _, c := range s.SubSections {
		out.SubSections = append(out.SubSections, MapCardDomainToApi(c))
	}
	return out
}

func MapCardDomainToApi(c domain.Card) api.Card {
	out := api.Card{
		Title: c.Title,
		Theme: c.Theme,
	}
	for _, b := range c.Blocks {
		out.Blocks = append(out.Blocks, MapBlockDomainToApi(b))
	}
	for _, k := range c.KPIs {
		out.KPIs = append(out.KPIs, api.KPI{Label: k.Label, Value: k.Value})
	}
	for _, m := range c.Metrics {
		out.Metrics = append(out.Metrics, api.Metric{Label: m.Label, Value: m.Value, Direction: m.Direction})
	}
	for _, i := range c.Insights {
		out.Insights = append(out.Insights, api.Insight{
			Title:     i.Title,
			Body:      i.Body,
			Type:      i.Type,
			Priority:  i.Priority,
			Sentiment: i.Sentiment,
		})
	}
	for _, b := range c.Badges {
		out.Badges = append(out.Badges, api.Badge{Label: b.Label, Color: b.Color})
	}
	for _, ch := range c.Charts {
		out.Charts = append(out.Charts, MapChartDomainToApi(ch))
	}
	return out
}

func MapBlockDomainToApi(b domain.Block) api.Block {
	out := api.Block{
		Kind:  string(b.Kind),
		Label: b.Label,
		Body:  b.Body,
		Count: b.Count,
		Depth: b.Depth,
	}
	for _, item := range b.Items {
		out.Items = append(out.Items, MapBlockDomainToApi(item))
	}
	return out
}

func MapChartDomainToApi(c domain.Chart) api.Chart {
	out := api.Chart{
		Kind:   string(c.Kind),
		Title:  c.Title,
		Series: []api.SeriesPoint{},
	}
	for _, p := range c.Series {
		out.Series = append(out.Series, api.SeriesPoint{
			Name:     p.Name,
			Value:    p.Value,
			Color:    p.Color,
			Metadata: p.Metadata,
		})
	}
	return out
}

func MapAnalysisRecordStoreToApi(r store.AnalysisRecord) api.FilingSummary {
	return api.FilingSummary{
		Accession:  r.Accession,
		Ticker:     r.Ticker,
		FilingType: r.FilingType,
		FiledAt:    r.FiledAt,
	}
}
