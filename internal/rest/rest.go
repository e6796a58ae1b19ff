package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.opentelemetry.io/otel"

	"github.com/sanLimbu/task-tracker/internal"
)

// ErrorResponse represents a response containing an error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

func renderErrorResponse(w http.ResponseWriter, r *http.Request, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	status := http.StatusInternalServerError

	var ierr *internal.Error
	if !errors.As(err, &ierr) {
		resp.Error = "internal error"
	} else {
		switch ierr.Code() {
		case internal.ErrorCodeNotFound:
			status = http.StatusNotFound
		case internal.ErrorCodeInvalidArgument:
			status = http.StatusBadRequest
		case internal.ErrorCodeUnknown:
			fallthrough
		default:
			resp.Error = "internal error"
		}
	}

	if err != nil {
		_, span := otel.Tracer(otelName).Start(r.Context(), "rest.renderErrorResponse")
		defer span.End()

		span.RecordError(err)
	}

	renderResponse(w, r, resp, status)
}

func renderResponse(w http.ResponseWriter, r *http.Request, res interface{}, status int) {
	render.Status(r, status)
	render.JSON(w, r, res)
}
