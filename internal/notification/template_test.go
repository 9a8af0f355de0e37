package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gocalendar/internal/model"
)

func TestRender(t *testing.T) {
	body, err := Render(model.Notification{
		Email:       "a@example.com",
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Dentist",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Salam kenal")
	assert.Contains(t, body, "A new calendar entry has been created with the following details:")
	assert.Contains(t, body, "<strong>Email:</strong> a@example.com")
	assert.Contains(t, body, "<strong>Date:</strong> 2024-03-01")
	assert.Contains(t, body, "<strong>Description:</strong> Dentist")
	assert.Contains(t, body, "This is an automated message. Please do not reply to this email.")
}

func TestRender_EscapesUserContent(t *testing.T) {
	body, err := Render(model.Notification{
		Email:       "a@example.com",
		Date:        time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC),
		Description: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "2024-03-01T15:04:05Z")
}
