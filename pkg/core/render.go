package core

import (
	"fmt"
	"strings"
)

// Layout selects the orientation of the rendered calendar.
type Layout int

const (
	// Horizontal renders one row per month and one column per day cell.
	Horizontal Layout = iota
	// Vertical renders the transposed grid: one column per month.
	Vertical
)

// Column widths used by Render.
const (
	LabelWidth          = 4
	HorizontalCellWidth = 3
	VerticalCellWidth   = 4
)

func (l Layout) String() string {
	switch l {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout accepts "horizontal", "vertical" or their first letter, in any case.
// The empty string means Horizontal.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("layout %q: %w", s, ErrInvalidLayout)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(b []byte) error {
	parsed, err := ParseLayout(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Render formats a built (untransposed) grid in the given layout.
func Render(g Grid, layout Layout) string {
	if layout == Vertical {
		return Format(Transpose(g), LabelWidth, VerticalCellWidth)
	}
	return Format(g, LabelWidth, HorizontalCellWidth)
}

// Format renders every row of g as-is: the first column left-justified in
// labelWidth, the remaining cells right-justified in cellWidth, empty cells
// as blanks. Trailing spaces are trimmed and rows are joined by newlines.
//
// A marked day is printed as "[N]". The brackets take one extra column, which
// is borrowed from the left padding of the cell that follows it, so columns
// after the mark stay aligned.
func Format(g Grid, labelWidth, cellWidth int) string {
	lines := make([]string, 0, len(g.Rows))
	for _, row := range g.Rows {
		lines = append(lines, formatRow(row, labelWidth, cellWidth))
	}
	return strings.Join(lines, "\n")
}

func formatRow(row []Cell, labelWidth, cellWidth int) string {
	if len(row) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", labelWidth, row[0])

	borrow := false
	for _, c := range row[1:] {
		width := cellWidth
		if c.Kind == CellMarked {
			width++
		}
		s := fmt.Sprintf("%*s", width, c)
		if borrow && strings.HasPrefix(s, " ") {
			s = s[1:]
		}
		borrow = c.Kind == CellMarked
		b.WriteString(s)
	}

	return strings.TrimRight(b.String(), " ")
}
