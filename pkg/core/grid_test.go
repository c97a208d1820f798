package core_test

import (
	"errors"
	"testing"

	"github.com/aretw0/almanac/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Shape(t *testing.T) {
	g, err := core.Build(2024, nil)
	require.NoError(t, err)

	require.Equal(t, 1+core.Months, g.Height())
	for i, row := range g.Rows {
		assert.Len(t, row, 1+core.DayCells, "row %d", i)
	}

	assert.Equal(t, core.Label("2024"), g.Rows[0][0])
	for i := 1; i <= core.DayCells; i++ {
		assert.Equal(t, core.CellLabel, g.Rows[0][i].Kind)
		assert.Equal(t, core.WeekdayNames[(i-1)%7], g.Rows[0][i].Text)
	}
	for m := 1; m <= core.Months; m++ {
		assert.Equal(t, core.Label(core.MonthNames[m-1]), g.Rows[m][0])
	}
}

func TestBuild_MonthRows(t *testing.T) {
	years := []int{1900, 2000, 2023, 2024, 2100, 0, -1}

	for _, year := range years {
		g, err := core.Build(year, nil)
		require.NoError(t, err)

		for m := 1; m <= core.Months; m++ {
			row := g.Rows[m]
			start := core.FirstWeekday(year, m) + 1

			// Leading cells are empty.
			for col := 1; col < start; col++ {
				assert.Equal(t, core.CellEmpty, row[col].Kind, "%d/%d col %d", year, m, col)
			}

			// Days run 1..N without gaps, then empty to the end.
			want := 1
			for col := start; col <= core.DayCells; col++ {
				if want <= core.DaysIn(year, m) {
					assert.Equal(t, core.Day(want), row[col], "%d/%d col %d", year, m, col)
					want++
					continue
				}
				assert.Equal(t, core.CellEmpty, row[col].Kind, "%d/%d col %d", year, m, col)
			}
			assert.Equal(t, core.DaysIn(year, m)+1, want, "%d/%d day count", year, m)
		}
	}
}

func TestBuild_February1900(t *testing.T) {
	g, err := core.Build(1900, nil)
	require.NoError(t, err)

	days := 0
	for _, c := range g.Rows[2][1:] {
		if c.IsDay() {
			days++
		}
	}
	assert.Equal(t, 28, days)
}

func TestBuild_MarksToday(t *testing.T) {
	g, err := core.Build(2024, &core.Date{Month: 2, Day: 29})
	require.NoError(t, err)

	row, col, ok := g.Marked()
	require.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, core.Marked(29), g.Rows[row][col])

	marked := 0
	for _, r := range g.Rows {
		for _, c := range r {
			if c.Kind == core.CellMarked {
				marked++
			}
		}
	}
	assert.Equal(t, 1, marked)
}

func TestBuild_NoTodayNoMark(t *testing.T) {
	g, err := core.Build(2023, nil)
	require.NoError(t, err)

	_, _, ok := g.Marked()
	assert.False(t, ok)
}

func TestBuild_RejectsInvalidToday(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		today core.Date
		want  error
	}{
		{"month zero", 2024, core.Date{Month: 0, Day: 1}, core.ErrInvalidMonth},
		{"month thirteen", 2024, core.Date{Month: 13, Day: 1}, core.ErrInvalidMonth},
		{"day zero", 2024, core.Date{Month: 1, Day: 0}, core.ErrInvalidDay},
		{"april 31", 2024, core.Date{Month: 4, Day: 31}, core.ErrInvalidDay},
		{"feb 29 non-leap", 2023, core.Date{Month: 2, Day: 29}, core.ErrInvalidDay},
		{"feb 29 in 1900", 1900, core.Date{Month: 2, Day: 29}, core.ErrInvalidDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := tt.today
			_, err := core.Build(tt.year, &today)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestTranspose(t *testing.T) {
	g, err := core.Build(2024, nil)
	require.NoError(t, err)

	tr := core.Transpose(g)
	require.Equal(t, 1+core.DayCells, tr.Height())
	require.Equal(t, 1+core.Months, tr.Width())

	for i, row := range g.Rows {
		for j, c := range row {
			assert.Equal(t, c, tr.Rows[j][i])
		}
	}

	assert.Equal(t, g, core.Transpose(tr))
}

func TestTranspose_Ragged(t *testing.T) {
	g := core.Grid{Rows: [][]core.Cell{
		{core.Label("a"), core.Day(1), core.Day(2)},
		{core.Label("b")},
	}}

	tr := core.Transpose(g)
	require.Equal(t, 3, tr.Height())
	assert.Equal(t, []core.Cell{core.Day(2), {}}, tr.Rows[2])
}

func TestGrid_CloneIsDeep(t *testing.T) {
	g, err := core.Build(2024, nil)
	require.NoError(t, err)

	c := g.Clone()
	c.Rows[1][1] = core.Marked(99)
	assert.NotEqual(t, c.Rows[1][1], g.Rows[1][1])
}

func TestParseDate(t *testing.T) {
	d, err := core.ParseDate("02-29")
	require.NoError(t, err)
	assert.Equal(t, core.Date{Month: 2, Day: 29}, d)

	d, err = core.ParseDate(" 3-7 ")
	require.NoError(t, err)
	assert.Equal(t, core.Date{Month: 3, Day: 7}, d)
	assert.Equal(t, "03-07", d.String())

	for _, bad := range []string{"", "2024", "02/29", "a-b", "-1-2", "1-2-3"} {
		_, err := core.ParseDate(bad)
		assert.ErrorIs(t, err, core.ErrInvalidDate, "input %q", bad)
	}
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "", core.Cell{}.String())
	assert.Equal(t, "Jan", core.Label("Jan").String())
	assert.Equal(t, "7", core.Day(7).String())
	assert.Equal(t, "[7]", core.Marked(7).String())
	assert.Equal(t, "marked", core.CellMarked.String())
}
