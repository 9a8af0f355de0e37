package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/gocalendar/internal/api/http/response"
	"github.com/dtroode/gocalendar/internal/apperrors"
	"github.com/dtroode/gocalendar/internal/model"
)

func handleError(w http.ResponseWriter, err error) {
	if apiErr, ok := apperrors.As(err); ok {
		response.Error(w, apiErr)
		return
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, apperrors.NewErrEntryNotFound())
	default:
		response.Error(w, apperrors.NewErrInternalServerError())
	}
}
