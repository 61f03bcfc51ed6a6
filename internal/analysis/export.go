package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"contestlens/analyzer/internal/domain"
)

// ExportTechnique is the serialized per-category record.
type ExportTechnique struct {
	Frequency    float64 `json:"frequency"`
	ProblemCount int     `json:"problem_count"`
}

// ExportBand is the serialized per-band record.
type ExportBand struct {
	Label         string                     `json:"label"`
	TotalProblems int                        `json:"total_problems"`
	Techniques    map[string]ExportTechnique `json:"techniques"`
}

// Export is the external-facing analysis document, keyed by band key
// ("lo-hi"). Its shape is a contract with the serving layer and stays
// stable across runs for identical input.
type Export map[string]ExportBand

// BuildExport serializes an ordered list of band analyses.
func BuildExport(analyses []domain.BandAnalysis) Export {
	out := make(Export, len(analyses))
	for _, a := range analyses {
		band := ExportBand{
			Label:         a.Band.Label,
			TotalProblems: a.Total,
			Techniques:    make(map[string]ExportTechnique, len(a.Categories)),
		}
		for _, c := range a.Categories {
			band.Techniques[c.Name] = ExportTechnique{
				Frequency:    c.Frequency,
				ProblemCount: c.Count,
			}
		}
		out[a.Band.Key()] = band
	}
	return out
}

// WriteExport writes the export document to path. The document is
// written to a temp file in the destination directory and renamed into
// place, so an interrupted run never leaves a partial file behind.
func WriteExport(path string, export Export) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".analysis-*.json")
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		tmp.Close()
		return fmt.Errorf("encode export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}
	return nil
}

// ReadExport loads an export document previously written by
// WriteExport.
func ReadExport(path string) (Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("decode export file: %w", err)
	}
	return export, nil
}
