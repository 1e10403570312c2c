package calendar

import "time"

// Clock12 is the interactive 12-hour view of an instant's time of day.
// Storage stays 24-hour; this type exists only while the user is
// adjusting a time with the up/down controls. Every adjustment returns
// a new instant with the calendar date untouched.
type Clock12 struct {
	Hour   int // 1..12
	Minute int
	PM     bool
}

// ClockOf extracts the 12-hour view from an instant.
func ClockOf(t time.Time) Clock12 {
	h := t.Hour()
	c := Clock12{Minute: t.Minute(), PM: h >= 12}
	switch {
	case h == 0:
		c.Hour = 12
	case h > 12:
		c.Hour = h - 12
	default:
		c.Hour = h
	}
	return c
}

// hour24 recomputes the stored hour from the display hour and period.
// Display 12 is the edge: 12 AM is hour 0, 12 PM is hour 12.
func (c Clock12) hour24() int {
	switch {
	case c.Hour == 12 && !c.PM:
		return 0
	case c.Hour != 12 && c.PM:
		return c.Hour + 12
	default:
		return c.Hour
	}
}

// Apply writes the clock back onto t, changing only the time of day.
func (c Clock12) Apply(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.hour24(), c.Minute, 0, 0, t.Location())
}

// IncHour steps the display hour up, wrapping 12 to 1.
func (c Clock12) IncHour() Clock12 {
	if c.Hour == 12 {
		c.Hour = 1
	} else {
		c.Hour++
	}
	return c
}

// DecHour steps the display hour down, wrapping 1 to 12.
func (c Clock12) DecHour() Clock12 {
	if c.Hour == 1 {
		c.Hour = 12
	} else {
		c.Hour--
	}
	return c
}

// IncMinute steps forward five minutes, wrapping 55 to 0. A minute off
// the 5-step grid (possible on imported records) snaps to the grid.
func (c Clock12) IncMinute() Clock12 {
	c.Minute = (c.Minute/5*5 + 5) % 60
	return c
}

// DecMinute steps back five minutes, wrapping 0 to 55. An off-grid
// minute snaps down, which already is a decrement.
func (c Clock12) DecMinute() Clock12 {
	if c.Minute%5 != 0 {
		c.Minute = c.Minute / 5 * 5
		return c
	}
	if c.Minute == 0 {
		c.Minute = 55
	} else {
		c.Minute -= 5
	}
	return c
}

// SetPeriod switches AM/PM. The display hour is kept; only the
// underlying 24-hour value shifts by twelve.
func (c Clock12) SetPeriod(pm bool) Clock12 {
	c.PM = pm
	return c
}

// TogglePeriod flips AM/PM.
func (c Clock12) TogglePeriod() Clock12 {
	c.PM = !c.PM
	return c
}
