package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/dtroode/gocalendar/internal/api/http/response"
	"github.com/dtroode/gocalendar/internal/apperrors"
	"github.com/dtroode/gocalendar/internal/logger"
)

// Recover turns handler panics into 500 responses.
type Recover struct {
	logger *logger.Logger
}

func NewRecover(logger *logger.Logger) *Recover {
	return &Recover{logger: logger}
}

func (m *Recover) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}
			m.logger.Error("Recover middleware: handler panicked",
				"path", r.URL.Path,
				"panic", p,
				"stack", string(debug.Stack()))
			response.Error(w, apperrors.NewErrInternalServerError())
		}()

		next.ServeHTTP(w, r)
	})
}
