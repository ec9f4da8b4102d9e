package render

import (
	"regexp"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// NoAnalysisPlaceholder is rendered when a filing carries no sections.
const NoAnalysisPlaceholder = "No analysis available"

const (
	displayNameMax    = 30
	displayNamePrefix = 27
)

// displayNames maps full filing section names to their short display
// form.
var displayNames = map[string]string{
	"Item 1 - Business":                                      "Business",
	"Item 1A - Risk Factors":                                 "Risk Factors",
	"Item 7 - Management's Discussion & Analysis":            "MD&A",
	"Item 7A - Quantitative and Qualitative Disclosures":     "Market Risk",
	"Item 8 - Financial Statements and Supplementary Data":   "Financial Statements",
	"Part I Item 2 - Management's Discussion & Analysis":     "MD&A",
	"Part I Item 1 - Financial Statements":                   "Financial Statements",
	"Part II Item 1A - Risk Factors":                         "Risk Factors",
}

var itemPrefixPattern = regexp.MustCompile(`^Item\s+\d+[A-Za-z]?\s*-\s*(.+)$`)

// DisplayName shortens a section name for navigation chrome: the fixed
// table first, then the "Item N - ..." prefix pattern, then plain
// truncation for long names.
func DisplayName(name string) string {
	if short, ok := displayNames[name]; ok {
		return short
	}
	if m := itemPrefixPattern.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	if runes := []rune(name); len(runes) > displayNameMax {
		return string(runes[:displayNamePrefix]) + "..."
	}
	return name
}

// RenderFiling drives dispatch across every section and sub-section of
// a filing. The expanded set is owned by the caller; rendering only
// reads it. An empty filing renders the placeholder state instead of
// an empty section list.
func RenderFiling(filing domain.Filing, expanded domain.ExpandedSections) (domain.RenderedFiling, error) {
	out := domain.RenderedFiling{
		Accession:  filing.Accession,
		Ticker:     filing.Ticker,
		FilingType: filing.FilingType,
	}

	if len(filing.Sections) == 0 {
		out.Placeholder = NoAnalysisPlaceholder
		return out, nil
	}

	for _, section := range filing.Sections {
		rendered, err := RenderSection(section, expanded)
		if err != nil {
			return domain.RenderedFiling{}, err
		}
		out.Sections = append(out.Sections, rendered)
	}
	return out, nil
}

// RenderSection renders one section's sub-sections through the
// dispatch table.
func RenderSection(section domain.Section, expanded domain.ExpandedSections) (domain.RenderedSection, error) {
	rendered := domain.RenderedSection{
		Name:             section.Name,
		DisplayName:      DisplayName(section.Name),
		OverallSentiment: section.OverallSentiment,
		CriticalFindings: section.CriticalFindings,
		Expanded:         expanded.Expanded(section.Name),
	}

	for _, sub := range section.SubSections {
		card, err := Dispatch(sub)
		if err != nil {
			return domain.RenderedSection{}, err
		}
		rendered.SubSections = append(rendered.SubSections, card)
	}
	return rendered, nil
}
