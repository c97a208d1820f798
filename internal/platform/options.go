package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/almanac/pkg/core"
)

// options holds the internal configuration for a calendar render.
// Pointer fields distinguish "unset" from the zero value so that
// config file values only fill what no option set explicitly.
type options struct {
	logger     *slog.Logger
	layout     *core.Layout
	today      *core.Date
	date       *time.Time
	markToday  *bool
	clock      func() time.Time
	location   *time.Location
	configPath string
	interval   time.Duration
	debounce   time.Duration

	// markDefault applies when neither an option nor the config file
	// says whether to mark today.
	markDefault bool
}

// Option defines a functional option for configuring a render.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:   slog.New(slog.DiscardHandler),
		clock:    time.Now,
		interval: time.Minute,
		debounce: 50 * time.Millisecond,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger. A nil logger keeps the default, which discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLayout selects horizontal or vertical output.
func WithLayout(layout core.Layout) Option {
	return func(o *options) {
		o.layout = &layout
	}
}

// WithToday marks the given month and day. It takes precedence over
// WithDate and WithMarkToday.
func WithToday(month, day int) Option {
	return func(o *options) {
		o.today = &core.Date{Month: month, Day: day}
	}
}

// WithDate marks t's month and day, but only when rendering t's year.
func WithDate(t time.Time) Option {
	return func(o *options) {
		o.date = &t
	}
}

// WithMarkToday marks the current date (from the clock, in the configured
// location) when rendering the current year.
func WithMarkToday(mark bool) Option {
	return func(o *options) {
		o.markToday = &mark
	}
}

// WithClock replaces time.Now. Mostly useful in tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLocation sets the time zone used to decide what "today" is.
// Defaults to time.Local, or the config file's timezone.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// WithConfigPath loads defaults from a YAML config file.
// Explicit options always win over values from the file.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithWatchInterval sets how often Watch checks for a date rollover.
// Zero means default (1 minute).
func WithWatchInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithDebounce sets how long Watch waits for config file events to settle.
// Zero means default (50ms).
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}
