package storage

import (
	"encoding/json"
	"io"
	"math"
)

type ExportData struct {
	ID        string               `json:"id"`
	Preset    string               `json:"preset"`
	Dt        float64              `json:"dt"`
	Duration  float64              `json:"duration"`
	TimeScale float64              `json:"time_scale"`
	Steps     int                  `json:"steps"`
	Bodies    []string             `json:"bodies"`
	Times     []float64            `json:"times"`
	Columns   map[string][]float64 `json:"columns"`
}

// ExportJSON writes a stored run as a single JSON document. NaN cells, which
// JSON cannot carry, are written as 0.
func ExportJSON(w io.Writer, meta *RunMetadata, trace *Trace) error {
	data := ExportData{
		ID:        meta.ID,
		Preset:    meta.Preset,
		Dt:        meta.Dt,
		Duration:  meta.Duration,
		TimeScale: meta.TimeScale,
		Steps:     trace.Len(),
		Bodies:    meta.Bodies,
		Times:     trace.Times,
		Columns:   make(map[string][]float64, len(trace.Columns)),
	}

	for j, name := range trace.Columns {
		col := make([]float64, len(trace.Rows))
		for i, row := range trace.Rows {
			v := row[j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			col[i] = v
		}
		data.Columns[name] = col
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
