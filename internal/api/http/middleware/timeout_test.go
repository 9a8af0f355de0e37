package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		d            time.Duration
		wantDeadline bool
	}{
		{name: "deadline set", d: time.Second, wantDeadline: true},
		{name: "disabled", d: 0, wantDeadline: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var hasDeadline bool
			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				_, hasDeadline = r.Context().Deadline()
			})

			Timeout(tt.d)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.wantDeadline, hasDeadline)
		})
	}
}
