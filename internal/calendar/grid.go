// Package calendar holds the pure date and time-of-day arithmetic behind
// the study planner: the month grid, month navigation, and the 12-hour
// adjustment wheel. Nothing here reads the clock; "today" is always a
// parameter.
package calendar

import "time"

// Cell is one slot of a 7-column month grid. A leading blank slot has
// Day == 0 and every flag false.
type Cell struct {
	Day        int
	IsPast     bool
	IsToday    bool
	IsFuture   bool
	IsSelected bool
	HasStudied bool
	Selectable bool
}

// Blank reports whether the cell is a leading filler slot.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// DaysInMonth returns the length of the month in the proleptic Gregorian
// calendar.
func DaysInMonth(month time.Month, year int) int {
	// First of the next month, rolled back a day.
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// FirstWeekday returns the weekday index of the 1st of the month,
// 0 = Sunday.
func FirstWeekday(month time.Month, year int) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// dateOnly zeroes the time-of-day so comparisons run at day granularity.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthGrid lays out one month as leading blanks followed by classified
// day cells. selected may be nil when no date has been picked. A past
// day is never selectable; attempts to select one are the caller's
// no-op, not an error.
func MonthGrid(month time.Month, year int, selected *time.Time, today time.Time) []Cell {
	days := DaysInMonth(month, year)
	lead := FirstWeekday(month, year)
	todayDate := dateOnly(today)

	cells := make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{})
	}

	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
		cell := Cell{Day: day}
		switch {
		case date.Before(todayDate):
			cell.IsPast = true
		case date.Equal(todayDate):
			cell.IsToday = true
		default:
			cell.IsFuture = true
		}
		cell.Selectable = !cell.IsPast
		if selected != nil && SameDay(date, *selected) {
			cell.IsSelected = true
		}
		cells = append(cells, cell)
	}

	return cells
}

// MarkStudied sets HasStudied on every cell whose date is in studied,
// keyed by "2006-01-02". Returns the same slice for chaining.
func MarkStudied(cells []Cell, month time.Month, year int, studied map[string]bool) []Cell {
	for i := range cells {
		if cells[i].Blank() {
			continue
		}
		key := time.Date(year, month, cells[i].Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if studied[key] {
			cells[i].HasStudied = true
		}
	}
	return cells
}

// Nav steps the viewed month. The original planner clamps at January
// and December of the viewed year, so a user cannot page from January
// into the previous December; that stands as the default until product
// says otherwise. Rollover enables crossing into the adjacent year.
type Nav struct {
	Rollover bool
}

// PrevMonth returns the month/year one step back.
func (n Nav) PrevMonth(month time.Month, year int) (time.Month, int) {
	if month > time.January {
		return month - 1, year
	}
	if n.Rollover {
		return time.December, year - 1
	}
	return time.January, year
}

// NextMonth returns the month/year one step forward.
func (n Nav) NextMonth(month time.Month, year int) (time.Month, int) {
	if month < time.December {
		return month + 1, year
	}
	if n.Rollover {
		return time.January, year + 1
	}
	return time.December, year
}
