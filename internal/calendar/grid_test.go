package calendar

import (
	"reflect"
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month    time.Month
		year     int
		expected int
	}{
		{time.January, 2025, 31},
		{time.February, 2025, 28},
		{time.February, 2024, 29},  // divisible by 4
		{time.February, 1900, 28},  // century, not by 400
		{time.February, 2000, 29},  // divisible by 400
		{time.April, 2025, 30},
		{time.December, 2025, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.month, tt.year); got != tt.expected {
			t.Errorf("DaysInMonth(%v, %d) = %d, want %d", tt.month, tt.year, got, tt.expected)
		}
	}
}

func TestMonthGridShape(t *testing.T) {
	today := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	for month := time.January; month <= time.December; month++ {
		for _, year := range []int{1999, 2024, 2025} {
			cells := MonthGrid(month, year, nil, today)
			lead := FirstWeekday(month, year)
			if lead < 0 || lead > 6 {
				t.Fatalf("%v %d: leading blanks %d out of range", month, year, lead)
			}
			if len(cells) != lead+DaysInMonth(month, year) {
				t.Errorf("%v %d: got %d cells, want %d", month, year, len(cells), lead+DaysInMonth(month, year))
			}
			for i := 0; i < lead; i++ {
				if !cells[i].Blank() {
					t.Errorf("%v %d: cell %d should be blank", month, year, i)
				}
			}
		}
	}
}

func TestMonthGridClassification(t *testing.T) {
	// Sunday June 15 2025; June 1 2025 is also a Sunday, so no blanks.
	today := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	selected := time.Date(2025, time.June, 20, 8, 0, 0, 0, time.UTC)

	cells := MonthGrid(time.June, 2025, &selected, today)
	if len(cells) != 30 {
		t.Fatalf("got %d cells, want 30", len(cells))
	}

	for _, cell := range cells {
		var wantPast, wantToday, wantFuture bool
		switch {
		case cell.Day < 15:
			wantPast = true
		case cell.Day == 15:
			wantToday = true
		default:
			wantFuture = true
		}
		if cell.IsPast != wantPast || cell.IsToday != wantToday || cell.IsFuture != wantFuture {
			t.Errorf("day %d: past=%t today=%t future=%t", cell.Day, cell.IsPast, cell.IsToday, cell.IsFuture)
		}

		// Exactly one classification flag per non-blank cell.
		count := 0
		for _, f := range []bool{cell.IsPast, cell.IsToday, cell.IsFuture} {
			if f {
				count++
			}
		}
		if count != 1 {
			t.Errorf("day %d: %d classification flags set", cell.Day, count)
		}

		if cell.Selectable == cell.IsPast {
			t.Errorf("day %d: selectable=%t with past=%t", cell.Day, cell.Selectable, cell.IsPast)
		}
		if cell.IsSelected != (cell.Day == 20) {
			t.Errorf("day %d: selected=%t", cell.Day, cell.IsSelected)
		}
	}
}

func TestMonthGridLeadingBlanks(t *testing.T) {
	today := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	// September 1 2025 is a Monday: one blank for Sunday.
	cells := MonthGrid(time.September, 2025, nil, today)
	if !cells[0].Blank() {
		t.Error("expected a leading blank before Monday the 1st")
	}
	if cells[1].Day != 1 || !cells[1].IsToday {
		t.Errorf("cell 1 = %+v, want today day 1", cells[1])
	}
}

func TestMonthGridDeterministic(t *testing.T) {
	today := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	selected := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	a := MonthGrid(time.March, 2025, &selected, today)
	b := MonthGrid(time.March, 2025, &selected, today)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different grids")
	}
}

func TestMarkStudied(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	studied := map[string]bool{
		"2025-06-03": true,
		"2025-06-15": true,
	}

	cells := MarkStudied(MonthGrid(time.June, 2025, nil, today), time.June, 2025, studied)
	for _, cell := range cells {
		want := cell.Day == 3 || cell.Day == 15
		if cell.HasStudied != want {
			t.Errorf("day %d: hasStudied=%t, want %t", cell.Day, cell.HasStudied, want)
		}
	}
}

func TestNavClampsAtYearEdges(t *testing.T) {
	var nav Nav

	// The source UI clamps rather than rolling into the adjacent year.
	if m, y := nav.PrevMonth(time.January, 2025); m != time.January || y != 2025 {
		t.Errorf("PrevMonth(Jan) = %v %d, want clamp at January 2025", m, y)
	}
	if m, y := nav.NextMonth(time.December, 2025); m != time.December || y != 2025 {
		t.Errorf("NextMonth(Dec) = %v %d, want clamp at December 2025", m, y)
	}
	if m, y := nav.PrevMonth(time.June, 2025); m != time.May || y != 2025 {
		t.Errorf("PrevMonth(Jun) = %v %d", m, y)
	}
	if m, y := nav.NextMonth(time.June, 2025); m != time.July || y != 2025 {
		t.Errorf("NextMonth(Jun) = %v %d", m, y)
	}
}

func TestNavRollover(t *testing.T) {
	nav := Nav{Rollover: true}

	if m, y := nav.PrevMonth(time.January, 2025); m != time.December || y != 2024 {
		t.Errorf("PrevMonth(Jan) = %v %d, want December 2024", m, y)
	}
	if m, y := nav.NextMonth(time.December, 2025); m != time.January || y != 2026 {
		t.Errorf("NextMonth(Dec) = %v %d, want January 2026", m, y)
	}
}
