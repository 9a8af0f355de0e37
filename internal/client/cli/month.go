package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dtroode/gocalendar/internal/client/api"
)

// RenderMonth writes a Monday-first month grid. Days with entries are marked with '*'.
func RenderMonth(w io.Writer, month time.Time, entries []api.Entry) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()

	marked := make(map[int]bool)
	for _, e := range entries {
		d := e.Date.UTC()
		if d.Year() == first.Year() && d.Month() == first.Month() {
			marked[d.Day()] = true
		}
	}

	title := first.Format("January 2006")
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", (28-len(title))/2), title)
	fmt.Fprintln(w, " Mo  Tu  We  Th  Fr  Sa  Su")

	// Monday is column 0.
	col := (int(first.Weekday()) + 6) % 7
	fmt.Fprint(w, strings.Repeat("    ", col))
	for day := 1; day <= daysIn; day++ {
		mark := " "
		if marked[day] {
			mark = "*"
		}
		fmt.Fprintf(w, " %2d%s", day, mark)
		col++
		if col == 7 && day != daysIn {
			fmt.Fprintln(w)
			col = 0
		}
	}
	fmt.Fprintln(w)
}

func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
