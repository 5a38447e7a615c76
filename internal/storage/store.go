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

	"github.com/kws/galaxy/internal/body"
	"github.com/kws/galaxy/internal/sim"
)

// Store persists runs under a base directory: one subdirectory per run
// with metadata.json, a per-step metric series CSV and a final star
// snapshot CSV.
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
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Galaxies  int                `json:"galaxies"`
	Stars     int                `json:"stars"`
	Steps     int                `json:"steps"`
	Dt        float64            `json:"dt"`
	G         float64            `json:"g"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(seed int64, dt, g float64, result *sim.Result, galaxies []*body.Galaxy) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Seed:      seed,
		Galaxies:  len(galaxies),
		Stars:     body.TotalStars(galaxies),
		Steps:     result.StepsTaken,
		Dt:        dt,
		G:         g,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeSeries(runDir, result); err != nil {
		return "", err
	}
	if err := s.writeStars(runDir, galaxies); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeSeries(runDir string, result *sim.Result) error {
	f, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	names := make([]string, 0, len(result.Series))
	for name := range result.Series {
		names = append(names, name)
	}
	sort.Strings(names)

	header := append([]string{"time"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range result.Times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(result.Series[name][i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func (s *Store) writeStars(runDir string, galaxies []*body.Galaxy) error {
	f, err := os.Create(filepath.Join(runDir, "stars.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"galaxy", "x", "y", "z", "vx", "vy", "vz"}); err != nil {
		return err
	}

	for gi, g := range galaxies {
		for _, star := range g.Stars {
			row := []string{
				strconv.Itoa(gi),
				strconv.FormatFloat(star.Position.X, 'f', 6, 64),
				strconv.FormatFloat(star.Position.Y, 'f', 6, 64),
				strconv.FormatFloat(star.Position.Z, 'f', 6, 64),
				strconv.FormatFloat(star.Velocity.X, 'f', 6, 64),
				strconv.FormatFloat(star.Velocity.Y, 'f', 6, 64),
				strconv.FormatFloat(star.Velocity.Z, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

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

// LoadSeries reads a run's per-step metric series: the column names
// (excluding time), the time axis, and one column slice per name.
func (s *Store) LoadSeries(runID string) ([]string, []float64, map[string][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, nil, fmt.Errorf("series.csv for %s is empty", runID)
	}

	names := records[0][1:]
	times := make([]float64, 0, len(records)-1)
	series := make(map[string][]float64, len(names))
	for _, name := range names {
		series[name] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != len(names)+1 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for i, name := range names {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				v = 0
			}
			series[name] = append(series[name], v)
		}
	}

	return names, times, series, nil
}

// LoadStars reads a run's final star snapshot as per-galaxy position
// lists.
func (s *Store) LoadStars(runID string) (map[int][][3]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "stars.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	stars := make(map[int][][3]float64)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		gi, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		x, _ := strconv.ParseFloat(record[1], 64)
		y, _ := strconv.ParseFloat(record[2], 64)
		z, _ := strconv.ParseFloat(record[3], 64)
		stars[gi] = append(stars[gi], [3]float64{x, y, z})
	}

	return stars, nil
}
