package core

import "fmt"

// FirstWeekday returns the weekday of the first day of month in year,
// where 0 is Sunday and 6 is Saturday.
//
// It evaluates Zeller's congruence directly, so it works for any proleptic
// Gregorian year, including zero and negative (astronomical) years.
// month must be in 1..12; anything else is a programming error and panics.
func FirstWeekday(year, month int) int {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("core: month %d out of range", month))
	}

	// January and February count as months 13 and 14 of the previous year.
	if month < 3 {
		month += 12
		year--
	}

	c, y := floorDiv(year, 100), floorMod(year, 100)
	h := 1 + floorDiv(26*(month+1), 10) + y + floorDiv(y, 4) + floorDiv(c, 4) - 2*c

	// Zeller yields Saturday=0; shift so Sunday=0.
	return floorMod(floorMod(h, 7)+6, 7)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; its sign follows b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
