// Package export converts a calendar grid into machine-readable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/almanac/pkg/core"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrMalformedGrid = errors.New("malformed calendar grid")
)

// Exporter converts a built (horizontal) grid to bytes.
type Exporter interface {
	Export(g core.Grid) ([]byte, error)
}

// Default returns the standard set of exporters keyed by format name.
func Default() map[string]Exporter {
	return map[string]Exporter{
		"json": NewJSONExporter(),
		"yaml": NewYAMLExporter(),
		"yml":  NewYAMLExporter(),
		"csv":  NewCSVExporter(),
		"text": NewTextExporter(core.Horizontal),
	}
}

// Formats lists the names accepted by Lookup.
func Formats() []string {
	names := make([]string, 0, len(Default()))
	for name := range Default() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the exporter registered under name (case-insensitive).
func Lookup(name string) (Exporter, error) {
	e, ok := Default()[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q (want one of %s): %w", name, strings.Join(Formats(), ", "), ErrUnknownFormat)
	}
	return e, nil
}

// --- Document model ---

// Document is the structured form shared by the JSON and YAML exporters.
type Document struct {
	Year     int        `json:"year" yaml:"year"`
	Leap     bool       `json:"leap" yaml:"leap"`
	Weekdays []string   `json:"weekdays" yaml:"weekdays,flow"`
	Months   []Month    `json:"months" yaml:"months"`
	Marked   *core.Date `json:"marked,omitempty" yaml:"marked,omitempty"`
}

// Month describes one month row. Cells mirrors the grid's day columns:
// 0 is an empty cell, anything else is the day number.
type Month struct {
	Name         string `json:"name" yaml:"name"`
	Number       int    `json:"number" yaml:"number"`
	FirstWeekday int    `json:"first_weekday" yaml:"first_weekday"`
	Days         int    `json:"days" yaml:"days"`
	Cells        []int  `json:"cells" yaml:"cells,flow"`
}

// NewDocument decodes a horizontal grid as produced by core.Build.
func NewDocument(g core.Grid) (Document, error) {
	if g.Height() != 1+core.Months {
		return Document{}, fmt.Errorf("%d rows: %w", g.Height(), ErrMalformedGrid)
	}

	year, err := strconv.Atoi(g.Rows[0][0].Text)
	if err != nil {
		return Document{}, fmt.Errorf("year label %q: %w", g.Rows[0][0].Text, ErrMalformedGrid)
	}

	doc := Document{
		Year: year,
		Leap: core.IsLeap(year),
	}
	for _, c := range g.Rows[0][1:] {
		doc.Weekdays = append(doc.Weekdays, c.Text)
	}

	for i, row := range g.Rows[1:] {
		if len(row) != 1+core.DayCells {
			return Document{}, fmt.Errorf("row %d has %d cells: %w", i+1, len(row), ErrMalformedGrid)
		}

		m := Month{Name: row[0].Text, Number: i + 1, FirstWeekday: -1, Cells: make([]int, core.DayCells)}
		for col, c := range row[1:] {
			if !c.IsDay() {
				continue
			}
			if m.FirstWeekday < 0 {
				m.FirstWeekday = col
			}
			m.Cells[col] = c.Day
			m.Days++
			if c.Kind == core.CellMarked {
				doc.Marked = &core.Date{Month: i + 1, Day: c.Day}
			}
		}
		doc.Months = append(doc.Months, m)
	}

	return doc, nil
}

// --- JSON Exporter ---

// JSONExporter writes the Document as indented JSON.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter { return &JSONExporter{} }

func (e *JSONExporter) Export(g core.Grid) ([]byte, error) {
	doc, err := NewDocument(g)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// --- YAML Exporter ---

// YAMLExporter writes the Document as YAML.
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAML exporter.
func NewYAMLExporter() *YAMLExporter { return &YAMLExporter{} }

func (e *YAMLExporter) Export(g core.Grid) ([]byte, error) {
	doc, err := NewDocument(g)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Exporter ---

// CSVExporter writes one record per grid row. Empty cells are empty fields,
// marked days are bracketed.
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

func (e *CSVExporter) Export(g core.Grid) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range g.Rows {
		record := make([]string, len(row))
		for i, c := range row {
			record[i] = c.String()
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- Text Exporter ---

// TextExporter renders the grid as fixed-width text with a trailing newline.
type TextExporter struct {
	Layout core.Layout
}

// NewTextExporter creates a text exporter for the given layout.
func NewTextExporter(layout core.Layout) *TextExporter {
	return &TextExporter{Layout: layout}
}

func (e *TextExporter) Export(g core.Grid) ([]byte, error) {
	return []byte(core.Render(g, e.Layout) + "\n"), nil
}
