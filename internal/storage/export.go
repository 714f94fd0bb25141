package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	MassSolar float64            `json:"mass_solar"`
	Columns   []string           `json:"columns"`
	Samples   [][]float64        `json:"samples"`
	Derived   map[string]float64 `json:"derived"`
}

// ExportJSON writes a full survey (metadata plus sweep rows) as indented
// JSON to w.
func ExportJSON(w io.Writer, meta *SurveyMetadata, columns []string, samples [][]float64) error {
	data := ExportData{
		ID:        meta.ID,
		Kind:      meta.Kind,
		MassSolar: meta.MassSolar,
		Columns:   columns,
		Samples:   samples,
		Derived:   meta.Derived,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONStdout(meta *SurveyMetadata, columns []string, samples [][]float64) error {
	return ExportJSON(os.Stdout, meta, columns, samples)
}
