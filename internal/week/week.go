// Package week implements ISO-week bucket keys of the form "2025-W07".
package week

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies one calendar week: ISO year, dash, "W", zero-padded ISO week.
type Key string

// Direction selects a neighboring week.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Of returns the key for the week containing t.
func Of(t time.Time) Key {
	y, w := t.ISOWeek()
	return Key(fmt.Sprintf("%d-W%02d", y, w))
}

// Current returns the key for the week containing today.
func Current() Key {
	return Of(time.Now())
}

// Parse splits a key into its ISO year and week number.
func Parse(k Key) (year, wk int, err error) {
	s := string(k)
	i := strings.Index(s, "-W")
	if i < 0 {
		return 0, 0, fmt.Errorf("week: malformed key %q", s)
	}
	year, err = strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, fmt.Errorf("week: malformed key %q", s)
	}
	wk, err = strconv.Atoi(s[i+2:])
	if err != nil || wk < 1 || wk > 53 {
		return 0, 0, fmt.Errorf("week: malformed key %q", s)
	}
	return year, wk, nil
}

// StartDate returns the Monday of the key's week.
func StartDate(k Key) (time.Time, error) {
	year, wk, err := Parse(k)
	if err != nil {
		return time.Time{}, err
	}
	// January 4 is always inside ISO week 1.
	d := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	iso := int(d.Weekday())
	if iso == 0 {
		iso = 7
	}
	d = d.AddDate(0, 0, -(iso - 1))
	return d.AddDate(0, 0, 7*(wk-1)), nil
}

// Neighbor returns the key of the adjacent week in the given direction.
func Neighbor(k Key, dir Direction) (Key, error) {
	start, err := StartDate(k)
	if err != nil {
		return "", err
	}
	days := 7
	if dir == Previous {
		days = -7
	}
	return Of(start.AddDate(0, 0, days)), nil
}
