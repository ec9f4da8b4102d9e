package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// ParsePayload decodes a raw analysis payload into a domain filing.
// Payloads come from an LLM pipeline and are occasionally malformed
// JSON; a failed strict decode goes through json-repair once before
// giving up. Record field order is preserved by the value decoder.
func ParsePayload(data []byte) (domain.Filing, error) {
	root, err := decodeRoot(data)
	if err != nil {
		return domain.Filing{}, err
	}

	filing := domain.Filing{
		Accession:  root.GetString("accession_number"),
		Ticker:     root.GetString("ticker"),
		FilingType: root.GetString("filing_type"),
		Summary:    root.GetString("executive_summary"),
	}
	if filed := root.GetString("filed_at"); filed != "" {
		if t, err := time.Parse(time.RFC3339, filed); err == nil {
			filing.FiledAt = t
		}
	}

	for _, sv := range root.GetList("sections") {
		if sv.Kind != domain.KindRecord {
			continue
		}
		filing.Sections = append(filing.Sections, parseSection(sv))
	}
	return filing, nil
}

func decodeRoot(data []byte) (domain.Value, error) {
	var root domain.Value
	if err := json.Unmarshal(data, &root); err == nil {
		if root.Kind == domain.KindRecord {
			return root, nil
		}
		return domain.Value{}, fmt.Errorf("analysis payload is not an object")
	}

	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return domain.Value{}, fmt.Errorf("payload is not repairable JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &root); err != nil {
		return domain.Value{}, fmt.Errorf("repaired payload still invalid: %w", err)
	}
	if root.Kind != domain.KindRecord {
		return domain.Value{}, fmt.Errorf("analysis payload is not an object")
	}
	return root, nil
}

func parseSection(sv domain.Value) domain.Section {
	section := domain.Section{
		Name:             sv.GetString("section_name"),
		CriticalFindings: sv.GetStrings("critical_findings"),
	}
	if sentiment, ok := sv.Get("overall_sentiment"); ok && sentiment.Kind == domain.KindNumber {
		section.OverallSentiment = clampSentiment(sentiment.Num)
	}

	for _, sub := range sv.GetList("sub_sections") {
		if sub.Kind != domain.KindRecord {
			continue
		}
		section.SubSections = append(section.SubSections, parseSubSection(sub, section.Name))
	}
	return section
}

func parseSubSection(sub domain.Value, parent string) domain.SubSection {
	tag := sub.GetString("schema_type")
	record, _ := sub.GetRecord("analysis")

	parentName := sub.GetString("parent_section")
	if parentName == "" {
		parentName = parent
	}

	return domain.SubSection{
		Schema:        domain.ParseSchemaKind(tag),
		SchemaTag:     tag,
		Name:          sub.GetString("sub_section_name"),
		ParentSection: parentName,
		Record:        record,
	}
}

func clampSentiment(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
