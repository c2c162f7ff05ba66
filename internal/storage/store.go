package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/sim"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "bodies.csv"
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

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	TimeScale float64            `json:"time_scale"`
	Follow    int                `json:"follow"`
	Bodies    []string           `json:"bodies"`
	Steps     int                `json:"steps"`
	Errors    int                `json:"errors"`
	Stats     map[string]float64 `json:"stats,omitempty"`
}

// Save writes meta and the result trace under a fresh run directory and
// returns its id. ID, Timestamp, Bodies and Steps are filled in from the
// result.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	name := meta.Preset
	if name == "" {
		name = "scene"
	}
	base := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runID := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(s.baseDir, runID)); errors.Is(err, fs.ErrNotExist) {
			break
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Bodies = result.Names
	meta.Steps = result.StepsTaken
	meta.Errors = len(result.Errors)

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeTrace(csvFile, result); err != nil {
		return "", err
	}
	return runID, nil
}

func writeTrace(out io.Writer, result *sim.Result) error {
	w := csv.NewWriter(out)

	header := []string{"time"}
	for _, name := range result.Names {
		header = append(header, name+".angle", name+".x", name+".y", name+".z")
	}
	header = append(header, "center.x", "center.y", "center.z")
	if err := w.Write(header); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for i := range result.Times {
		row := []string{f(result.Times[i])}
		for j := range result.Names {
			p := result.Positions[i][j]
			row = append(row, f(result.Angles[i][j]), f(p.X), f(p.Y), f(p.Z))
		}
		c := result.Centers[i]
		row = append(row, f(c.X), f(c.Y), f(c.Z))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns stored runs, newest first. Directories without readable
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metadataFile))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", orrery.ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadTrace reads a run's per-frame CSV back. Unparseable cells read as NaN
// so columns stay aligned.
func (s *Store) LoadTrace(runID string) (*Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", orrery.ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	return ReadTrace(file)
}
