package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/responsiv/internal/export"
	"github.com/san-kum/responsiv/internal/metrics"
)

// Store keeps recorded metrics runs, one directory per run.
type Store struct {
	baseDir     string
	writeSeries func(io.Writer, export.Report) error
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, writeSeries: export.WriteCSV}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string           `json:"id"`
	Quality   string           `json:"quality"`
	Rendered  string           `json:"rendered"`
	Timestamp time.Time        `json:"timestamp"`
	Seed      int64            `json:"seed"`
	Ticks     int              `json:"ticks"`
	Interval  string           `json:"interval"`
	Points    int              `json:"points"`
	Headline  metrics.Headline `json:"headline"`
}

// Save records the run under a fresh id. A run that fails partway is
// removed so List never sees it.
func (s *Store) Save(r export.Report, seed int64) (id string, err error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d_%s", r.Quality, now.Unix(), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := RunMetadata{
		ID:        runID,
		Quality:   r.Quality,
		Rendered:  r.Rendered,
		Timestamp: now,
		Seed:      seed,
		Ticks:     r.Ticks,
		Interval:  r.Interval,
		Points:    len(r.Values),
		Headline:  r.Headline,
	}

	if err := writeFile(filepath.Join(runDir, "metadata.json"), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(runDir, "series.csv"), func(w io.Writer) error {
		return s.writeSeries(w, r)
	}); err != nil {
		return "", err
	}
	return runID, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSeries(runID string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []float64{}, nil
	}

	values := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: bad value %q: %w", runID, record[1], err)
		}
		values = append(values, v)
	}
	return values, nil
}
