package platform

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/almanac/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNew_WithToday(t *testing.T) {
	cal, err := New(2024, WithToday(2, 29))
	require.NoError(t, err)

	d, ok := cal.Today()
	require.True(t, ok)
	assert.Equal(t, core.Date{Month: 2, Day: 29}, d)
}

func TestNew_RejectsInvalidToday(t *testing.T) {
	_, err := New(2023, WithToday(2, 29))
	assert.ErrorIs(t, err, core.ErrInvalidDay)

	_, err = New(2023, WithToday(13, 1))
	assert.ErrorIs(t, err, core.ErrInvalidMonth)
}

func TestNew_WithDateOnlyMarksItsYear(t *testing.T) {
	date := time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC)

	cal, err := New(2024, WithDate(date))
	require.NoError(t, err)
	_, ok := cal.Today()
	assert.True(t, ok)

	cal, err = New(2025, WithDate(date))
	require.NoError(t, err)
	_, ok = cal.Today()
	assert.False(t, ok)
}

func TestNew_MarkTodayUsesClockAndLocation(t *testing.T) {
	// 23:30 UTC on Dec 31 is already Jan 1 in Berlin.
	now := time.Date(2024, time.December, 31, 23, 30, 0, 0, time.UTC)
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	cal, err := New(2024, WithMarkToday(true), WithClock(fixedClock(now)), WithLocation(time.UTC))
	require.NoError(t, err)
	d, ok := cal.Today()
	require.True(t, ok)
	assert.Equal(t, core.Date{Month: 12, Day: 31}, d)

	cal, err = New(2025, WithMarkToday(true), WithClock(fixedClock(now)), WithLocation(berlin))
	require.NoError(t, err)
	d, ok = cal.Today()
	require.True(t, ok)
	assert.Equal(t, core.Date{Month: 1, Day: 1}, d)

	cal, err = New(2024, WithClock(fixedClock(now)))
	require.NoError(t, err)
	_, ok = cal.Today()
	assert.False(t, ok, "today is not marked unless asked")
}

func TestGenerate_Layout(t *testing.T) {
	cal, err := core.NewCalendar(2024, nil)
	require.NoError(t, err)

	h, err := Generate(2024)
	require.NoError(t, err)
	assert.Equal(t, cal.Generate(false), h)

	v, err := Generate(2024, WithLayout(core.Vertical))
	require.NoError(t, err)
	assert.Equal(t, cal.Generate(true), v)
}

func TestGenerate_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "layout: vertical\nmark_today: true\ntimezone: UTC\nformat: json\n")
	now := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)

	out, err := Generate(2024, WithConfigPath(path), WithClock(fixedClock(now)))
	require.NoError(t, err)
	want, err := core.NewCalendar(2024, &core.Date{Month: 3, Day: 15})
	require.NoError(t, err)
	assert.Equal(t, want.Generate(true), out)

	// Explicit options win over the file.
	out, err = Generate(2024, WithConfigPath(path), WithClock(fixedClock(now)),
		WithLayout(core.Horizontal), WithMarkToday(false))
	require.NoError(t, err)
	plain, err := core.NewCalendar(2024, nil)
	require.NoError(t, err)
	assert.Equal(t, plain.Generate(false), out)

	r, err := Resolve(2024, WithConfigPath(path), WithClock(fixedClock(now)))
	require.NoError(t, err)
	assert.Equal(t, "json", r.Format)
	assert.Equal(t, core.Vertical, r.Layout)
	require.NotNil(t, r.Today)
	assert.Equal(t, core.Date{Month: 3, Day: 15}, *r.Today)
}

func TestGenerate_BadConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "layout: sideways\n")
	_, err := Generate(2024, WithConfigPath(path))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCurrentYear(t *testing.T) {
	now := time.Date(2024, time.December, 31, 23, 30, 0, 0, time.UTC)

	year, err := CurrentYear(WithClock(fixedClock(now)), WithLocation(time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	path := writeConfig(t, t.TempDir(), "timezone: Asia/Tokyo\n")
	year, err = CurrentYear(WithClock(fixedClock(now)), WithConfigPath(path))
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := New(2024, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "calendar built")
	assert.Contains(t, buf.String(), "year=2024")

	// nil keeps the discarding default.
	_, err = New(2024, WithLogger(nil))
	require.NoError(t, err)
}
