package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/session"
	"github.com/san-kum/orrery/internal/sim"
)

func runSolar(t *testing.T) *sim.Result {
	t.Helper()
	result, err := sim.New(session.New(orbit.SolarSystem())).Run(context.Background(), sim.Config{Dt: 1, Duration: 5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := runSolar(t)
	runID, err := st.Save(RunMetadata{Preset: "solar", Dt: 1, Duration: 5, TimeScale: 1, Follow: -1}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "solar_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Preset != "solar" || meta.Steps != 5 || len(meta.Bodies) != 9 {
		t.Errorf("unexpected metadata %+v", meta)
	}

	tr, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if tr.Len() != 6 {
		t.Errorf("expected 6 rows, got %d", tr.Len())
	}
	if len(tr.Columns) != 9*4+3 {
		t.Errorf("expected %d columns, got %d", 9*4+3, len(tr.Columns))
	}

	xs, err := tr.Column("Earth.x")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(xs[0]-1.2) > 1e-6 {
		t.Errorf("expected earth x 1.2, got %v", xs[0])
	}
	angles, _ := tr.Column("Mercury.angle")
	if math.Abs(angles[5]-0.2) > 1e-6 {
		t.Errorf("expected mercury angle 0.2, got %v", angles[5])
	}
}

func TestStoreSaveUniqueIDs(t *testing.T) {
	st := New(t.TempDir())
	result := runSolar(t)

	a, err := st.Save(RunMetadata{Preset: "solar"}, result)
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save(RunMetadata{Preset: "solar"}, result)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("expected distinct ids, got %s twice", a)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("missing"); !errors.Is(err, orrery.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadTrace("missing"); !errors.Is(err, orrery.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreListSkipsJunk(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := os.MkdirAll(filepath.Join(dir, "broken"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken", metadataFile), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(RunMetadata{}, runSolar(t)); err != nil {
		t.Fatal(err)
	}

	runs, _ := st.List()
	if len(runs) != 1 || !strings.HasPrefix(runs[0].ID, "scene_") {
		t.Errorf("unexpected runs %+v", runs)
	}
}

func TestTraceColumns(t *testing.T) {
	tr, err := ReadTrace(strings.NewReader("time,a.x,a.z\n0,1,0\n1,bad,1\n"))
	if err != nil {
		t.Fatal(err)
	}

	xs, _ := tr.Column("a.x")
	if xs[0] != 1 || !math.IsNaN(xs[1]) {
		t.Errorf("unexpected column %v", xs)
	}
	if _, err := tr.Column("b.x"); !errors.Is(err, orrery.ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}

	track, err := tr.Track("a")
	if err != nil {
		t.Fatal(err)
	}
	if track[1].Y != 1 {
		t.Errorf("expected z as track y, got %v", track[1])
	}

	var buf bytes.Buffer
	if err := tr.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "time,a.x,a.z\n") {
		t.Errorf("unexpected csv %q", buf.String())
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(RunMetadata{Preset: "solar", Dt: 1, Duration: 5}, runSolar(t))
	if err != nil {
		t.Fatal(err)
	}
	meta, _ := st.Load(runID)
	tr, _ := st.LoadTrace(runID)

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, tr); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Steps != 6 || len(data.Columns["Sun.x"]) != 6 {
		t.Errorf("unexpected export %+v", data)
	}
}
