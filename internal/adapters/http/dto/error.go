package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
	"github.com/jsamuelsen11/go-business-service/internal/platform/logging"
)

// Problem types. ProblemTypeConcurrency marks a 409 for a stale version so
// clients can tell "reload and retry" apart from a duplicate key.
const (
	ProblemTypeDefault     = "about:blank"
	ProblemTypeConcurrency = "/problems/concurrency"
)

// detailInternal replaces the detail of unexpected errors.
const detailInternal = "internal server error"

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one validation failure. Location is "body.<field>", or
// "body" when the failure names no field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewProblem builds a plain problem for status about r.
func NewProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     ProblemTypeDefault,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse maps err onto a problem. Domain errors keep their message
// as the detail; anything unrecognised becomes a 500 with a generic detail.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = detailInternal
	}
	resp := NewProblem(r, status, detail)

	if domain.KindOf(err) == domain.KindConcurrency {
		resp.Type = ProblemTypeConcurrency
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = details(verr.Results)
	}
	return resp
}

// WriteErrorResponse writes the problem for err. 5xx errors are logged with
// the full chain since the body no longer carries it.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	WriteProblem(w, r, resp)
}

// WriteProblem writes resp as application/problem+json with resp.Status.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encode problem response",
			slog.Any("error", err),
		)
	}
}

// statusFor maps domain sentinels to HTTP statuses. ErrConcurrency wraps
// ErrConflict, so stale versions land on 409.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// details expands results into one entry per member, ordered by location.
func details(results []domain.ValidationResult) []ErrorDetail {
	out := make([]ErrorDetail, 0, len(results))
	for _, res := range results {
		if len(res.Members) == 0 {
			out = append(out, ErrorDetail{Location: "body", Message: res.Message})
			continue
		}
		for _, m := range res.Members {
			out = append(out, ErrorDetail{Location: "body." + m, Message: res.Message})
		}
	}
	slices.SortStableFunc(out, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}
