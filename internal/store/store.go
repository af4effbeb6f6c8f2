// Package store persists settled layout runs under a data directory:
// one subdirectory per run holding metadata.json, positions.csv, and
// history.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/devang-m/graphlay/internal/graph"
	"github.com/devang-m/graphlay/internal/sim"
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
	ID        string             `json:"id"`
	Graph     string             `json:"graph"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Preset    string             `json:"preset,omitempty"`
	Frames    int                `json:"frames"`
	Slept     bool               `json:"slept"`
	Nodes     int                `json:"nodes"`
	Edges     int                `json:"edges"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run. The returned ID names the run directory.
func (s *Store) Save(graphName, preset string, seed int64, m *graph.Model, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", graphName, uuid.New().String()[:8])
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Graph:     graphName,
		Timestamp: time.Now(),
		Seed:      seed,
		Preset:    preset,
		Frames:    result.Frames,
		Slept:     result.Slept,
		Nodes:     len(m.Nodes),
		Edges:     len(m.Edges),
		Metrics:   result.Metrics,
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writePositions(filepath.Join(runDir, "positions.csv"), m); err != nil {
		return "", err
	}
	if err := writeHistory(filepath.Join(runDir, "history.csv"), result); err != nil {
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

func writePositions(path string, m *graph.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"id", "name", "type", "component", "x", "y", "radius"}); err != nil {
		return err
	}
	for i := range m.Nodes {
		n := &m.Nodes[i]
		row := []string{
			n.ID, n.Name, string(n.Type),
			strconv.Itoa(n.Component),
			strconv.FormatFloat(n.X, 'f', 4, 64),
			strconv.FormatFloat(n.Y, 'f', 4, 64),
			strconv.FormatFloat(n.Radius, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeHistory(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"frame", "alpha", "kinetic_energy"}); err != nil {
		return err
	}
	for i := range result.AlphaHistory {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(result.AlphaHistory[i], 'f', 6, 64),
			strconv.FormatFloat(result.EnergyHistory[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns metadata for every run in the data directory, skipping
// anything unreadable.
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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
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

// Position is one row of a saved positions.csv.
type Position struct {
	ID        string
	Name      string
	Type      string
	Component int
	X, Y      float64
	Radius    float64
}

func (s *Store) LoadPositions(runID string) ([]Position, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "positions.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Position{}, nil
	}

	positions := make([]Position, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 7 {
			continue
		}
		component, _ := strconv.Atoi(rec[3])
		x, _ := strconv.ParseFloat(rec[4], 64)
		y, _ := strconv.ParseFloat(rec[5], 64)
		radius, _ := strconv.ParseFloat(rec[6], 64)
		positions = append(positions, Position{
			ID: rec[0], Name: rec[1], Type: rec[2],
			Component: component, X: x, Y: y, Radius: radius,
		})
	}
	return positions, nil
}

// LoadHistory returns the per-frame alpha and kinetic energy series.
func (s *Store) LoadHistory(runID string) (alphas, energies []float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "history.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 3 {
			continue
		}
		a, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		e, _ := strconv.ParseFloat(records[i][2], 64)
		alphas = append(alphas, a)
		energies = append(energies, e)
	}
	return alphas, energies, nil
}
