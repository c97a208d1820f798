package core

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DayCells is the number of day columns in a month row:
	// up to 6 leading blanks plus up to 31 days.
	DayCells = 37

	// Months is the number of month rows below the header.
	Months = 12
)

// MonthNames holds the three-letter month abbreviations, January first.
var MonthNames = [Months]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WeekdayNames holds the two-letter weekday abbreviations, Sunday first.
var WeekdayNames = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// CellKind discriminates the contents of a grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellLabel
	CellDay
	CellMarked
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellLabel:
		return "label"
	case CellDay:
		return "day"
	case CellMarked:
		return "marked"
	default:
		return "CellKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is one entry of a Grid.
// Text is set for labels; Day is set for plain and marked days.
type Cell struct {
	Kind CellKind
	Text string
	Day  int
}

// Label returns a label cell.
func Label(text string) Cell { return Cell{Kind: CellLabel, Text: text} }

// Day returns a plain day cell.
func Day(day int) Cell { return Cell{Kind: CellDay, Day: day} }

// Marked returns a marked day cell.
func Marked(day int) Cell { return Cell{Kind: CellMarked, Day: day} }

// IsDay reports whether the cell holds a day number, marked or not.
func (c Cell) IsDay() bool {
	return c.Kind == CellDay || c.Kind == CellMarked
}

// String renders the cell without padding. Marked days are bracketed.
func (c Cell) String() string {
	switch c.Kind {
	case CellLabel:
		return c.Text
	case CellDay:
		return strconv.Itoa(c.Day)
	case CellMarked:
		return "[" + strconv.Itoa(c.Day) + "]"
	default:
		return ""
	}
}

// Date is a month and day within the calendar year being rendered.
type Date struct {
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d", d.Month, d.Day)
}

// ParseDate parses a "MM-DD" (or "M-D") string. Range checks against a
// particular year happen in Build.
func ParseDate(s string) (Date, error) {
	m, d, ok := strings.Cut(strings.TrimSpace(s), "-")
	month, errM := strconv.Atoi(m)
	day, errD := strconv.Atoi(d)
	if !ok || errM != nil || errD != nil {
		return Date{}, fmt.Errorf("invalid date %q (want MM-DD): %w", s, ErrInvalidDate)
	}
	return Date{Month: month, Day: day}, nil
}

// Grid is a rectangular table of cells.
// A freshly built grid has 1+Months rows of 1+DayCells columns.
type Grid struct {
	Rows [][]Cell
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g.Rows) }

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	rows := make([][]Cell, len(g.Rows))
	for i, row := range g.Rows {
		rows[i] = append([]Cell(nil), row...)
	}
	return Grid{Rows: rows}
}

// Marked returns the position of the marked cell, if any.
func (g Grid) Marked() (row, col int, ok bool) {
	for i, r := range g.Rows {
		for j, c := range r {
			if c.Kind == CellMarked {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Build assembles the year grid.
//
// Row 0 is the year followed by repeating weekday abbreviations. Row m
// (1..12) is the month abbreviation followed by the days of that month,
// starting at the column of its first weekday. If today is non-nil the
// matching cell is marked. An out-of-range today is rejected.
func Build(year int, today *Date) (Grid, error) {
	if today != nil {
		if err := validateDate(year, *today); err != nil {
			return Grid{}, err
		}
	}

	rows := make([][]Cell, 1+Months)

	header := make([]Cell, 1+DayCells)
	header[0] = Label(strconv.Itoa(year))
	for i := 0; i < DayCells; i++ {
		header[i+1] = Label(WeekdayNames[i%len(WeekdayNames)])
	}
	rows[0] = header

	for month := 1; month <= Months; month++ {
		row := make([]Cell, 1+DayCells)
		row[0] = Label(MonthNames[month-1])

		start := FirstWeekday(year, month) + 1
		for day := 1; day <= DaysIn(year, month); day++ {
			cell := Day(day)
			if today != nil && today.Month == month && today.Day == day {
				cell = Marked(day)
			}
			row[start+day-1] = cell
		}
		rows[month] = row
	}

	return Grid{Rows: rows}, nil
}

// Transpose swaps rows and columns. Ragged rows are padded with empty cells.
func Transpose(g Grid) Grid {
	width := 0
	for _, row := range g.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	rows := make([][]Cell, width)
	for j := range rows {
		rows[j] = make([]Cell, len(g.Rows))
		for i, row := range g.Rows {
			if j < len(row) {
				rows[j][i] = row[j]
			}
		}
	}
	return Grid{Rows: rows}
}

func validateDate(year int, d Date) error {
	if d.Month < 1 || d.Month > Months {
		return fmt.Errorf("today %s: %w", d, ErrInvalidMonth)
	}
	if d.Day < 1 || d.Day > DaysIn(year, d.Month) {
		return fmt.Errorf("today %s in %d: %w", d, year, ErrInvalidDay)
	}
	return nil
}
