package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-business-service/internal/domain"
	"github.com/jsamuelsen11/go-business-service/internal/platform/logging"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// parseID reads an int64 route parameter. Zero parses; the services reject it.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(domain.FieldResult(param, "must be a valid integer"))
	}
	return id, nil
}

// writeJSON encodes v with status. Encoding failures happen after the header
// is sent, so they are only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes exactly one JSON value from the body into dst. On
// failure it writes a 400 problem and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError(domain.ValidationResult{Message: bodyProblem(err)}))
		return false
	}
	return true
}

var errTrailingData = errors.New("trailing data")

func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.As(err, &tooLarge):
		return "request body exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return typeErr.Field + " has the wrong type"
	case errors.Is(err, errTrailingData):
		return "request body must hold a single JSON value"
	default:
		return "invalid JSON"
	}
}

// validatable is implemented by request DTOs with transport-level rules.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and runs its Validate. On
// failure it writes the error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
