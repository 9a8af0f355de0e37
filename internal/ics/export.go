// Package ics renders calendar entries as an iCalendar document.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dtroode/gocalendar/internal/model"
)

const productID = "-//gocalendar//Calendar Export//EN"

// Export builds a VCALENDAR with one all-day VEVENT per entry.
// stamp is written as DTSTAMP on every event.
func Export(entries []model.Entry, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range entries {
		ev := cal.AddEvent(e.ID.String())
		ev.SetDtStampTime(stamp.UTC())
		ev.SetCreatedTime(e.CreatedAt.UTC())
		ev.SetModifiedAt(e.UpdatedAt.UTC())
		ev.SetAllDayStartAt(e.Date.UTC())
		ev.SetAllDayEndAt(e.Date.UTC().AddDate(0, 0, 1))
		ev.SetSummary(e.Description)
		ev.AddAttendee("mailto:" + e.Email)
	}

	return cal.Serialize()
}
