// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decode

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/railapi/models"
)

// InvalidDay is returned by DayIndex for dates that do not exist
const InvalidDay = -1

// DayIndex maps a calendar date to its position in a running-days bitstring,
// which starts on Wednesday: Wed=0 Thu=1 Fri=2 Sat=3 Sun=4 Mon=5 Tue=6.
// Invalid dates such as 31-02-2024 return InvalidDay.
func DayIndex(day, month, year int) int {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return InvalidDay
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return InvalidDay
	}
	mondayFirst := (int(t.Weekday()) + 6) % 7
	return (mondayFirst + 5) % 7
}

// ParseDate splits a DD-MM-YYYY string into its numeric parts. It does not
// check that the date exists; DayIndex does that.
func ParseDate(s string) (day, month, year int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, ErrBadDate
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadDate, s)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// RunsOn reports whether the train runs on dayIndex. known is false when the
// index does not address a bit, which means "cannot determine", not "no".
func RunsOn(s models.TrainSummary, dayIndex int) (runs, known bool) {
	if dayIndex < 0 || dayIndex >= len(s.RunningDays) {
		return false, false
	}
	return s.RunningDays[dayIndex] == 1, true
}

// FilterRunningOn keeps the entries known to run on dayIndex
func FilterRunningOn(entries []models.TrainListEntry, dayIndex int) []models.TrainListEntry {
	out := make([]models.TrainListEntry, 0, len(entries))
	for _, e := range entries {
		if runs, known := RunsOn(e.TrainBase, dayIndex); known && runs {
			out = append(out, e)
		}
	}
	return out
}
