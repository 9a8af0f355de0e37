package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dtroode/gocalendar/internal/model"
)

var entryCreatedTemplate = template.Must(template.New("entry_created").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Hi Salam kenal</h2>
  <p style="color: #666; line-height: 1.6;">
    A new calendar entry has been created with the following details:
  </p>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <p style="margin: 10px 0;"><strong>Email:</strong> {{.Email}}</p>
    <p style="margin: 10px 0;"><strong>Date:</strong> {{.Date}}</p>
    <p style="margin: 10px 0;"><strong>Description:</strong> {{.Description}}</p>
  </div>
  <p style="color: #999; font-size: 12px; margin-top: 30px;">
    This is an automated message. Please do not reply to this email.
  </p>
</div>
`))

// Render returns the HTML body for n. User-supplied fields are escaped.
func Render(n model.Notification) (string, error) {
	var buf bytes.Buffer
	err := entryCreatedTemplate.Execute(&buf, struct {
		Email       string
		Date        string
		Description string
	}{
		Email:       n.Email,
		Date:        formatDate(n.Date),
		Description: n.Description,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render notification: %w", err)
	}
	return buf.String(), nil
}

func formatDate(t time.Time) string {
	t = t.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
