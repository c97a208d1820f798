// Package almanac renders a full calendar year as fixed-width text.
//
// The core (pkg/core) computes the weekday of every month's first day with
// Zeller's congruence, lays the year out as a 13x38 grid (a header row of
// weekday abbreviations and one row per month) and formats it either
// horizontally, one month per line, or vertically, one month per column.
// A single "today" cell can be marked; it renders as [N].
//
// Features:
//
//   - **No calendar dependency**: weekday alignment is closed-form arithmetic,
//     valid for any proleptic Gregorian year including negative ones.
//   - **Two layouts**: horizontal (37 day columns) and vertical (the transpose).
//   - **Pure**: building and rendering do no I/O; a Calendar is immutable.
//   - **Config file**: `.almanac.yaml` supplies layout, time zone and marking defaults.
//   - **Exports**: JSON, YAML and CSV forms of the grid (pkg/export).
//
// Usage:
//
//	out, err := almanac.Generate(2024,
//		almanac.WithToday(2, 29),
//		almanac.WithLayout(almanac.Vertical),
//	)
package almanac
