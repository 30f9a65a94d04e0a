package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

const (
	metadataFile = "metadata.json"
	energyFile   = "energy.csv"
	bodiesFile   = "bodies.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Preset     string             `json:"preset"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Bodies     int                `json:"bodies"`
	Integrator string             `json:"integrator"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Run is everything recorded for one headless simulation.
type Run struct {
	Meta   RunMetadata
	Times  []float64
	Energy []float64
	Final  []dynamo.Body
}

// Save writes run under a fresh directory and returns its ID.
func (s *Store) Save(run Run) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", run.Meta.Preset, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := run.Meta
	meta.ID = runID
	meta.Timestamp = now
	if meta.Bodies == 0 {
		meta.Bodies = len(run.Final)
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	if err := writeCSV(filepath.Join(runDir, energyFile), energyRows(run.Times, run.Energy)); err != nil {
		return "", err
	}

	if err := writeCSV(filepath.Join(runDir, bodiesFile), bodyRows(run.Final)); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func energyRows(times, energy []float64) [][]string {
	rows := [][]string{{"time", "energy"}}
	for i := range energy {
		t := 0.0
		if i < len(times) {
			t = times[i]
		}
		rows = append(rows, []string{formatFloat(t), formatFloat(energy[i])})
	}
	return rows
}

func bodyRows(bodies []dynamo.Body) [][]string {
	rows := [][]string{{"x", "y", "vx", "vy", "mass"}}
	for _, b := range bodies {
		rows = append(rows, []string{
			formatFloat(b.Pos.X),
			formatFloat(b.Pos.Y),
			formatFloat(b.Vel.X),
			formatFloat(b.Vel.Y),
			formatFloat(b.Mass),
		})
	}
	return rows
}

// List returns the metadata of every stored run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadEnergy reads the energy series of a run.
func (s *Store) LoadEnergy(runID string) (times, energy []float64, err error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, energyFile))
	if err != nil {
		return nil, nil, err
	}

	times = make([]float64, 0, len(records))
	energy = make([]float64, 0, len(records))
	for _, rec := range records {
		vals, ok := parseRow(rec, 2)
		if !ok {
			continue
		}
		times = append(times, vals[0])
		energy = append(energy, vals[1])
	}
	return times, energy, nil
}

// LoadBodies reads the final body states of a run.
func (s *Store) LoadBodies(runID string) ([]dynamo.Body, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, bodiesFile))
	if err != nil {
		return nil, err
	}

	bodies := make([]dynamo.Body, 0, len(records))
	for i, rec := range records {
		vals, ok := parseRow(rec, 5)
		if !ok {
			return nil, fmt.Errorf("%s row %d: malformed body", runID, i+1)
		}
		bodies = append(bodies, dynamo.NewBody(
			dynamo.Vec2{X: vals[0], Y: vals[1]},
			dynamo.Vec2{X: vals[2], Y: vals[3]},
			vals[4],
		))
	}
	return bodies, nil
}

// readCSV returns all records after the header.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]string{}, nil
	}
	return records[1:], nil
}

func parseRow(rec []string, n int) ([]float64, bool) {
	if len(rec) < n {
		return nil, false
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}
