package core

// Calendar is a rendered-on-demand view of one year.
// The grid is built once by NewCalendar and never modified afterwards,
// so a Calendar is safe for concurrent use.
type Calendar struct {
	year  int
	today *Date
	grid  Grid
}

// NewCalendar builds the grid for year. today may be nil; when set it must
// name a valid day of that year, otherwise ErrInvalidMonth or ErrInvalidDay
// is returned.
func NewCalendar(year int, today *Date) (*Calendar, error) {
	var t *Date
	if today != nil {
		d := *today
		t = &d
	}

	grid, err := Build(year, t)
	if err != nil {
		return nil, err
	}

	return &Calendar{year: year, today: t, grid: grid}, nil
}

// Year returns the calendar year.
func (c *Calendar) Year() int { return c.year }

// Today returns the marked date, if any.
func (c *Calendar) Today() (Date, bool) {
	if c.today == nil {
		return Date{}, false
	}
	return *c.today, true
}

// Grid returns a copy of the horizontal grid.
func (c *Calendar) Grid() Grid { return c.grid.Clone() }

// Render returns the calendar text in the given layout.
func (c *Calendar) Render(layout Layout) string {
	return Render(c.grid, layout)
}

// Generate returns the calendar text, transposed when vertical is true.
func (c *Calendar) Generate(vertical bool) string {
	if vertical {
		return c.Render(Vertical)
	}
	return c.Render(Horizontal)
}

// FirstWeekdays returns the weekday of the 1st of every month, January first.
func (c *Calendar) FirstWeekdays() [Months]int {
	var out [Months]int
	for m := 1; m <= Months; m++ {
		out[m-1] = FirstWeekday(c.year, m)
	}
	return out
}
