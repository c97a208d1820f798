package core

import (
	"fmt"

	"github.com/aretw0/introspection"
)

// CalendarState exposes internal state for observability.
type CalendarState struct {
	Year          int    `json:"year"`
	Leap          bool   `json:"leap"`
	Today         *Date  `json:"today,omitempty"`
	FirstWeekdays []int  `json:"first_weekdays"`
	Grid          string `json:"grid"`
}

// State implements introspection.Introspectable.
func (c *Calendar) State() any {
	firsts := c.FirstWeekdays()

	var today *Date
	if d, ok := c.Today(); ok {
		today = &d
	}

	return CalendarState{
		Year:          c.year,
		Leap:          IsLeap(c.year),
		Today:         today,
		FirstWeekdays: firsts[:],
		Grid:          fmt.Sprintf("%dx%d", c.grid.Height(), c.grid.Width()),
	}
}

// ComponentType implements introspection.Component.
func (c *Calendar) ComponentType() string {
	return "calendar"
}

var _ introspection.Introspectable = (*Calendar)(nil)
var _ introspection.Component = (*Calendar)(nil)
