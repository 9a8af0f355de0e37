package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/gocalendar/internal/api/http/context"
	"github.com/dtroode/gocalendar/internal/apperrors"
	"github.com/dtroode/gocalendar/internal/mocks"
	"github.com/dtroode/gocalendar/internal/model"
	"github.com/dtroode/gocalendar/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	userID := uuid.MustParse("6f1c2a8e-0d7b-4b8e-9a51-2f5d8c3e7a10")

	tests := []struct {
		name     string
		body     string
		svcErr   error
		callSvc  bool
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			body:     `{"email":"a@x.io","password":"pw"}`,
			callSvc:  true,
			wantCode: http.StatusCreated,
			wantBody: `{"message":"User registered successfully","token":"tok","user":{"id":"6f1c2a8e-0d7b-4b8e-9a51-2f5d8c3e7a10","email":"a@x.io"}}`,
		},
		{
			name:     "email taken",
			body:     `{"email":"a@x.io","password":"pw"}`,
			svcErr:   apperrors.NewErrEmailIsTaken(),
			callSvc:  true,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"conflict","message":"User already exists"}`,
		},
		{
			name:     "storage failure hides cause",
			body:     `{"email":"a@x.io","password":"pw"}`,
			svcErr:   errors.New("pq: connection refused"),
			callSvc:  true,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal","message":"Server error"}`,
		},
		{
			name:     "malformed body",
			body:     `{"email":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"validation_error","message":"Invalid request body"}`,
		},
		{
			name:     "empty body",
			body:     ``,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"validation_error","message":"Request body is required"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			if tt.callSvc {
				var result model.AuthResult
				if tt.svcErr == nil {
					result = model.AuthResult{Token: "tok", User: model.User{ID: userID, Email: "a@x.io"}}
				}
				svc.On("Register", mock.Anything, "a@x.io", "pw").Return(result, tt.svcErr)
			}

			h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name     string
		svcErr   error
		wantCode int
	}{
		{name: "success", wantCode: http.StatusOK},
		{name: "invalid credentials", svcErr: apperrors.NewErrInvalidCredentials(), wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			var result model.AuthResult
			if tt.svcErr == nil {
				result = model.AuthResult{Token: "tok", User: model.User{ID: userID, Email: "a@x.io"}}
			}
			svc.On("Login", mock.Anything, "a@x.io", "pw").Return(result, tt.svcErr)

			h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			body := strings.NewReader(`{"email":"a@x.io","password":"pw"}`)
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", body))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.svcErr == nil {
				assert.Contains(t, rec.Body.String(), `"message":"Login successful"`)
				assert.Contains(t, rec.Body.String(), `"token":"tok"`)
			} else {
				assert.JSONEq(t, `{"error":"unauthorized","message":"Invalid credentials"}`, rec.Body.String())
			}
		})
	}
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	userID := uuid.New()

	svc := mocks.NewAuthService(t)
	svc.On("Logout", mock.Anything, userID).Return()

	h := NewAuth(svc, cm, testutil.MakeNoopLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req = req.WithContext(cm.SetUserIDToContext(req.Context(), userID))
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logout successful"}`, rec.Body.String())
}

func TestAuth_Logout_NoUser(t *testing.T) {
	t.Parallel()

	h := NewAuth(mocks.NewAuthService(t), httpctx.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_Me(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	userID := uuid.MustParse("6f1c2a8e-0d7b-4b8e-9a51-2f5d8c3e7a10")
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	svc := mocks.NewAuthService(t)
	svc.On("Me", mock.Anything, userID).Return(model.User{
		ID:           userID,
		Email:        "a@x.io",
		LoginHistory: []time.Time{at},
		CreatedAt:    at,
	}, nil)

	h := NewAuth(svc, cm, testutil.MakeNoopLogger())
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(cm.SetUserIDToContext(req.Context(), userID))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{
		"id":"6f1c2a8e-0d7b-4b8e-9a51-2f5d8c3e7a10",
		"email":"a@x.io",
		"loginHistory":["2024-03-01T10:00:00Z"],
		"logoutHistory":[],
		"createdAt":"2024-03-01T10:00:00Z"
	}}`, rec.Body.String())
}
