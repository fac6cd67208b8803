// Package data reads the data series shown by a plot panel.
//
// The input format is CSV: the first column holds x values, every further
// column one series of y values. An optional first row of non-numeric
// cells names the series. Empty cells are skipped, lines starting with
// '#' are comments.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotter"
)

// ErrNoData is returned for input without a single data row.
var ErrNoData = errors.New("data: no data rows")

// Series is one named data series.
type Series struct {
	Name string
	XY   plotter.XYs
}

// Range returns the minimum and maximum x and y values of all series.
func Range(series []Series) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, p := range s.XY {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}

// ReadCSV parses series from r.
func ReadCSV(r io.Reader) ([]Series, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var series []Series
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(rec) < 2 {
			return nil, fmt.Errorf("data: line %d: need at least two columns", line)
		}

		x, err := parseCell(rec[0])
		if err != nil && line == 1 {
			// Header row.
			series = make([]Series, len(rec)-1)
			for i, h := range rec[1:] {
				series[i].Name = strings.TrimSpace(h)
			}
			continue
		}
		if err != nil || math.IsNaN(x) {
			return nil, fmt.Errorf("data: line %d: bad x value %q", line, rec[0])
		}
		for len(series) < len(rec)-1 {
			series = append(series, Series{Name: fmt.Sprintf("y%d", len(series)+1)})
		}
		for i, cell := range rec[1:] {
			y, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("data: line %d, column %d: %w", line, i+2, err)
			}
			if math.IsNaN(y) {
				continue
			}
			series[i].XY = append(series[i].XY, plotter.XY{X: x, Y: y})
		}
	}

	n := 0
	for _, s := range series {
		n += len(s.XY)
	}
	if n == 0 {
		return nil, ErrNoData
	}
	return series, nil
}

// ReadFile parses the named CSV file.
func ReadFile(name string) ([]Series, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	series, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return series, nil
}

// parseCell parses a number. An empty cell yields NaN.
func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("value %q is not finite", s)
	}
	return v, nil
}
