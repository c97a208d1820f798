package almanac

import (
	"context"
	_ "embed"
	"log/slog"
	"time"

	"github.com/aretw0/almanac/internal/platform"
	"github.com/aretw0/almanac/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Calendar is a built year grid ready to render.
type Calendar = core.Calendar

// Date is a month and day within the rendered year.
type Date = core.Date

// Layout selects horizontal or vertical output.
type Layout = core.Layout

// Event is one render produced by Watch.
type Event = platform.Event

// Config is the on-disk configuration file.
type Config = platform.Config

const (
	Horizontal = core.Horizontal
	Vertical   = core.Vertical
)

// --- Configuration ---

// Option defines a functional option for configuring a render.
type Option = platform.Option

// WithToday marks the given month and day.
func WithToday(month, day int) Option {
	return platform.WithToday(month, day)
}

// WithDate marks t's month and day when rendering t's year.
func WithDate(t time.Time) Option {
	return platform.WithDate(t)
}

// WithMarkToday marks the current date when rendering the current year.
func WithMarkToday(mark bool) Option {
	return platform.WithMarkToday(mark)
}

// WithLayout selects horizontal or vertical output.
func WithLayout(layout Layout) Option {
	return platform.WithLayout(layout)
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithLocation sets the time zone used to decide what "today" is.
func WithLocation(loc *time.Location) Option {
	return platform.WithLocation(loc)
}

// WithConfigPath loads defaults from a YAML config file.
func WithConfigPath(path string) Option {
	return platform.WithConfigPath(path)
}

// WithWatchInterval sets how often Watch checks for a date rollover.
func WithWatchInterval(d time.Duration) Option {
	return platform.WithWatchInterval(d)
}

// --- Factory ---

// New builds the calendar for year.
func New(year int, opts ...Option) (*Calendar, error) {
	return platform.New(year, opts...)
}

// Generate builds and renders the calendar for year.
func Generate(year int, opts ...Option) (string, error) {
	return platform.Generate(year, opts...)
}

// Watch renders the current year now and again whenever the config file
// changes or the date rolls over, until ctx is cancelled.
func Watch(ctx context.Context, opts ...Option) (<-chan Event, error) {
	return platform.Watch(ctx, opts...)
}

// --- Utils ---

// FirstWeekday returns the weekday (0 = Sunday) of the 1st of month in year.
func FirstWeekday(year, month int) int {
	return core.FirstWeekday(year, month)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return core.IsLeap(year)
}

// ParseLayout parses "horizontal" or "vertical".
func ParseLayout(s string) (Layout, error) {
	return core.ParseLayout(s)
}

// FindConfig looks upwards from startDir for a config file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}
