package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gocalendar/internal/model"
)

func TestExport(t *testing.T) {
	created := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	entries := []model.Entry{
		{
			ID:          uuid.New(),
			Email:       "a@example.com",
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Description: "Dentist",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          uuid.New(),
			Email:       "b@example.com",
			Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Description: "Standup",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}

	out := Export(entries, created)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, productID)
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240301")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240302")

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)
	assert.Equal(t, entries[0].ID.String(), events[0].GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Dentist", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Standup", events[1].GetProperty(ical.ComponentPropertySummary).Value)
}

func TestExport_Empty(t *testing.T) {
	out := Export(nil, time.Now())

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, cal.Events())
}
