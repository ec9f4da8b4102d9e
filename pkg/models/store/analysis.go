package store

import "time"

// AnalysisRecord is one cached filing analysis as persisted: metadata
// columns plus the raw payload JSON exactly as the upstream pipeline
// produced it.
type AnalysisRecord struct {
	Accession  string
	Ticker     string
	FilingType string
	FiledAt    time.Time
	Payload    []byte
	CreatedAt  time.Time
}
