package middleware

import (
	"bytes"
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/testutil"
)

func TestInterceptorLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lvl       logging.Level
		wantLevel string
	}{
		{name: "info", lvl: logging.LevelInfo, wantLevel: "level=INFO"},
		{name: "warn", lvl: logging.LevelWarn, wantLevel: "level=WARN"},
		{name: "error", lvl: logging.LevelError, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := InterceptorLogger(logger.NewWithWriter(&buf, int(logging.LevelDebug), "text"))
			l.Log(context.Background(), tt.lvl, "finished call", "grpc.code", "OK")

			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), `msg="gRPC finished call"`)
			assert.Contains(t, buf.String(), "grpc.code=OK")
		})
	}
}

func TestRecoveryHandler(t *testing.T) {
	t.Parallel()

	err := RecoveryHandler(testutil.MakeNoopLogger())(context.Background(), "boom")
	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
}

func TestLoggingOptions(t *testing.T) {
	t.Parallel()
	assert.NotEmpty(t, LoggingOptions())
}
