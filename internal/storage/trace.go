package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/orrery/internal/orrery"
)

// Trace is a stored run's table: one row per frame, first column time.
type Trace struct {
	Columns []string
	Times   []float64
	Rows    [][]float64
}

func ReadTrace(in io.Reader) (*Trace, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Trace{}, nil
	}

	tr := &Trace{
		Columns: records[0][1:],
		Times:   make([]float64, 0, len(records)-1),
		Rows:    make([][]float64, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		tr.Times = append(tr.Times, t)

		row := make([]float64, len(tr.Columns))
		for j := range row {
			row[j] = math.NaN()
			if j+1 < len(record) {
				if v, err := strconv.ParseFloat(record[j+1], 64); err == nil {
					row[j] = v
				}
			}
		}
		tr.Rows = append(tr.Rows, row)
	}

	return tr, nil
}

func (t *Trace) Len() int { return len(t.Times) }

// Column returns every sample of the named column, e.g. "Earth.x".
func (t *Trace) Column(name string) ([]float64, error) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", orrery.ErrUnknownColumn, name)
	}

	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Track returns a body's path projected onto the orbital XZ plane.
func (t *Trace) Track(body string) ([]orrery.Vec2, error) {
	xs, err := t.Column(body + ".x")
	if err != nil {
		return nil, err
	}
	zs, err := t.Column(body + ".z")
	if err != nil {
		return nil, err
	}

	out := make([]orrery.Vec2, len(xs))
	for i := range xs {
		out[i] = orrery.Vec2{X: xs[i], Y: zs[i]}
	}
	return out, nil
}

func (t *Trace) WriteCSV(out io.Writer) error {
	w := csv.NewWriter(out)
	if err := w.Write(append([]string{"time"}, t.Columns...)); err != nil {
		return err
	}
	for i, row := range t.Rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.FormatFloat(t.Times[i], 'f', 6, 64))
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
