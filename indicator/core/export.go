package core

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PlotData is a named, flattened view of the published part of a result,
// suitable for handing to a charting or storage adapter.
type PlotData struct {
	Name      string    `json:"name"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Timestamp []int64   `json:"timestamp,omitempty"`
}

// GenerateTimestamps returns count timestamps spaced by interval.
func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	if count <= 0 {
		return nil
	}
	ts := make([]int64, count)
	for i := 0; i < count; i++ {
		ts[i] = startTime + int64(i)*interval
	}
	return ts
}

// PlotFromResult keeps only the valid range of r. X holds the original input
// indices. timestamps, when non-nil, must be aligned to the input.
func PlotFromResult(name string, r Result, timestamps []int64) (PlotData, error) {
	if timestamps != nil && len(timestamps) != len(r.Values) {
		return PlotData{}, BadParamf("PlotFromResult", "%s: %d timestamps for %d values", name, len(timestamps), len(r.Values))
	}
	y := CopySlice(r.Valid())
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(r.Begin + i)
	}
	pd := PlotData{Name: name, X: x, Y: y}
	if timestamps != nil && len(y) > 0 {
		pd.Timestamp = append([]int64(nil), timestamps[r.Begin:]...)
	}
	return pd, nil
}

// FormatPlotDataJSON serialises plot series as a JSON array.
func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}

// FormatPlotDataCSV writes one row per point. Names are quoted as needed.
func FormatPlotDataCSV(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write([]string{"Name", "X", "Y", "Timestamp"}); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
		for i := 0; i < len(d.X); i++ {
			ts := ""
			if i < len(d.Timestamp) {
				ts = strconv.FormatInt(d.Timestamp[i], 10)
			}
			row := []string{d.Name, strconv.FormatFloat(d.X[i], 'g', -1, 64), strconv.FormatFloat(d.Y[i], 'g', -1, 64), ts}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("failed to write csv row for %s: %w", d.Name, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return sb.String(), nil
}
