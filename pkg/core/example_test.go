package core_test

import (
	"fmt"
	"strings"

	"github.com/aretw0/almanac/pkg/core"
)

func ExampleFirstWeekday() {
	for _, year := range []int{1900, 2000, 2100} {
		fmt.Println(year, core.WeekdayNames[core.FirstWeekday(year, 3)], core.IsLeap(year))
	}
	// Output:
	// 1900 Th false
	// 2000 We true
	// 2100 Mo false
}

func ExampleCalendar_Generate() {
	cal, err := core.NewCalendar(2024, &core.Date{Month: 2, Day: 29})
	if err != nil {
		panic(err)
	}

	lines := strings.Split(cal.Generate(false), "\n")
	fmt.Println(lines[2][len(lines[2])-12:])
	// Output:
	// 26 27 28[29]
}
