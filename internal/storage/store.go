package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store persists computed surveys under a base directory, one directory
// per survey: metadata.json plus samples.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SurveyMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	MassSolar float64            `json:"mass_solar"`
	Timestamp time.Time          `json:"timestamp"`
	Samples   int                `json:"samples"`
	Columns   []string           `json:"columns"`
	Derived   map[string]float64 `json:"derived"`
}

// Save writes one survey: columns names the CSV fields, samples holds one
// row per sweep point, derived carries scalar results (horizon radius,
// spaghettification distance, ...) worth keeping alongside the sweep.
func (s *Store) Save(kind string, massSolar float64, columns []string, samples [][]float64, derived map[string]float64) (string, error) {
	surveyID := fmt.Sprintf("%s_%d", kind, time.Now().Unix())
	dir := filepath.Join(s.baseDir, surveyID)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SurveyMetadata{
		ID:        surveyID,
		Kind:      kind,
		MassSolar: massSolar,
		Timestamp: time.Now(),
		Samples:   len(samples),
		Columns:   columns,
		Derived:   derived,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return "", err
	}
	for _, row := range samples {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = strconv.FormatFloat(val, 'f', 6, 64)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	return surveyID, nil
}

func (s *Store) List() ([]SurveyMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SurveyMetadata{}, nil
		}
		return nil, err
	}

	surveys := make([]SurveyMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta SurveyMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		surveys = append(surveys, meta)
	}

	return surveys, nil
}

func (s *Store) Load(surveyID string) (*SurveyMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, surveyID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SurveyMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads back the sweep rows of a saved survey along with the
// column header.
func (s *Store) LoadSamples(surveyID string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, surveyID, "samples.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return []string{}, [][]float64{}, nil
	}

	columns := records[0]
	samples := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for _, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		samples = append(samples, row)
	}

	return columns, samples, nil
}
