package platform

import (
	"time"

	"github.com/aretw0/almanac/pkg/core"
)

// Resolved is the outcome of merging options with the config file.
type Resolved struct {
	Layout core.Layout
	Today  *core.Date
	Format string
}

// resolve merges explicit options over the config file for the given year.
// The config file is read on every call so Watch picks up edits.
func (o *options) resolve(year int) (Resolved, error) {
	var cfg Config
	if o.configPath != "" {
		loaded, err := LoadConfig(o.configPath)
		if err != nil {
			return Resolved{}, err
		}
		cfg = loaded
	}

	s := Resolved{Format: cfg.Format}

	if o.layout != nil {
		s.Layout = *o.layout
	} else {
		// Already validated by LoadConfig.
		s.Layout, _ = core.ParseLayout(cfg.Layout)
	}

	loc := o.locationFor(cfg)

	mark := o.markDefault
	if cfg.MarkToday != nil {
		mark = *cfg.MarkToday
	}
	if o.markToday != nil {
		mark = *o.markToday
	}

	switch {
	case o.today != nil:
		d := *o.today
		s.Today = &d
	case o.date != nil:
		s.Today = dateIn(*o.date, year)
	case mark:
		s.Today = dateIn(o.clock().In(loc), year)
	}

	return s, nil
}

// locationFor picks the explicit location, then the config's, then time.Local.
func (o *options) locationFor(cfg Config) *time.Location {
	if o.location != nil {
		return o.location
	}
	if loc, _ := cfg.Location(); loc != nil {
		return loc
	}
	return time.Local
}

// dateIn returns t's month and day if t falls in year.
func dateIn(t time.Time, year int) *core.Date {
	if t.Year() != year {
		return nil
	}
	return &core.Date{Month: int(t.Month()), Day: t.Day()}
}

// New builds the calendar for year.
//
//	cal, err := almanac.New(2024, almanac.WithToday(2, 29))
func New(year int, opts ...Option) (*core.Calendar, error) {
	cal, _, err := build(year, newOptions(opts))
	return cal, err
}

// Generate builds the calendar for year and renders it in the configured layout.
func Generate(year int, opts ...Option) (string, error) {
	return newOptions(opts).generate(year)
}

func (o *options) generate(year int) (string, error) {
	cal, s, err := build(year, o)
	if err != nil {
		return "", err
	}
	return cal.Render(s.Layout), nil
}

// CurrentYear returns the clock's year in the configured location.
func CurrentYear(opts ...Option) (int, error) {
	return newOptions(opts).currentYear()
}

func (o *options) currentYear() (int, error) {
	var cfg Config
	if o.configPath != "" {
		loaded, err := LoadConfig(o.configPath)
		if err != nil {
			return 0, err
		}
		cfg = loaded
	}
	return o.clock().In(o.locationFor(cfg)).Year(), nil
}

// Resolve reports the effective layout, marked date and export format for
// year after merging options with the config file.
func Resolve(year int, opts ...Option) (Resolved, error) {
	return newOptions(opts).resolve(year)
}

func build(year int, o *options) (*core.Calendar, Resolved, error) {
	s, err := o.resolve(year)
	if err != nil {
		return nil, Resolved{}, err
	}

	cal, err := core.NewCalendar(year, s.Today)
	if err != nil {
		o.logger.Debug("calendar rejected", "year", year, "error", err)
		return nil, Resolved{}, err
	}

	o.logger.Debug("calendar built",
		"year", year,
		"layout", s.Layout.String(),
		"marked", s.Today != nil,
	)
	return cal, s, nil
}
