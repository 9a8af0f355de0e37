package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gocalendar/internal/client/api"
)

func TestRenderMonth(t *testing.T) {
	t.Parallel()

	entries := []api.Entry{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	RenderMonth(&buf, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), entries)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "March 2024")
	assert.Equal(t, " Mo  Tu  We  Th  Fr  Sa  Su", lines[1])
	// 1 March 2024 is a Friday.
	assert.Equal(t, strings.Repeat("    ", 4)+"  1*  2   3 ", lines[2])
	assert.True(t, strings.HasSuffix(lines[6], " 31*"))
	assert.NotContains(t, buf.String(), " 2*")
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, sameDay(d, d.Add(23*time.Hour)))
	assert.False(t, sameDay(d, d.AddDate(1, 0, 0)))
}
