package client

import (
	"encoding/json"
	"fmt"
)

// decodeAccessionList accepts both list response shapes the analysis
// API has shipped: a bare array of accession numbers, or an object
// with an "accessions" field.
func decodeAccessionList(body []byte) ([]string, error) {
	var plain []string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain, nil
	}

	var wrapped struct {
		Accessions []string `json:"accessions"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode accession list: %w", err)
	}
	return wrapped.Accessions, nil
}
