package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("invalid window")

type Window string

const (
	WindowToday     Window = "today"
	WindowYesterday Window = "yesterday"
	Window24h       Window = "24h"
	Window48h       Window = "48h"
	WindowWeek      Window = "week"
	WindowLastWeek  Window = "lastweek"
	Window7d        Window = "7d"
	Window14d       Window = "14d"
	Window30d       Window = "30d"
	WindowMonth     Window = "month"
	WindowLastMonth Window = "lastmonth"

	DefaultWindow   = Window7d
	DefaultCurrency = "USD"
)

var windowLabels = map[Window]string{
	WindowToday:     "Today",
	WindowYesterday: "Yesterday",
	Window24h:       "Last 24 hours",
	Window48h:       "Last 48 hours",
	WindowWeek:      "Week-to-date",
	WindowLastWeek:  "Last week",
	Window7d:        "Last 7 days",
	Window14d:       "Last 14 days",
	Window30d:       "Last 30 days",
	WindowMonth:     "Month-to-date",
	WindowLastMonth: "Last month",
}

// Windows lists the supported tokens in dropdown order.
var Windows = []Window{
	WindowToday, WindowYesterday, Window24h, Window48h, WindowWeek, WindowLastWeek,
	Window7d, Window14d, Window30d, WindowMonth, WindowLastMonth,
}

func ParseWindow(s string) (Window, error) {
	w := Window(s)
	if _, ok := windowLabels[w]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidWindow, s)
	}
	return w, nil
}

func (w Window) Label() string {
	return windowLabels[w]
}

// Days returns the number of daily buckets the window covers relative to now.
func (w Window) Days(now time.Time) int {
	switch w {
	case WindowToday, WindowYesterday, Window24h:
		return 1
	case Window48h:
		return 2
	case WindowWeek, WindowLastWeek, Window7d:
		return 7
	case Window14d:
		return 14
	case Window30d:
		return 30
	case WindowMonth:
		return now.Day()
	case WindowLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfMonth.AddDate(0, 0, -1).Day()
	default:
		return 7
	}
}
