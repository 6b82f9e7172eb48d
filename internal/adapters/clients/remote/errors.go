package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// ProblemTypeConcurrency is the RFC 9457 problem type a business API uses to
// mark a 409 caused by a stale version rather than a duplicate key.
const ProblemTypeConcurrency = "/problems/concurrency"

// problemDetail represents an RFC 9457 Problem Details response from the
// remote business API.
type problemDetail struct {
	Type   string        `json:"type"`
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within a problem response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an HTTP error response to a domain error so that a
// remote proxy fails the same way a local one does:
//
//   - 404 becomes a *domain.NotFoundError
//   - 400 and 422 become a *domain.ValidationError
//   - 409 becomes a *domain.ConcurrencyError for stale versions, otherwise
//     it wraps domain.ErrConflict
//   - 5xx wraps domain.ErrUnavailable
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &domain.NotFoundError{Message: detail}

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return &domain.ValidationError{Results: []domain.ValidationResult{{Message: detail}}}

	case resp.StatusCode == http.StatusConflict:
		if pd.Type == ProblemTypeConcurrency {
			return &domain.ConcurrencyError{Message: detail}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseProblemDetail attempts to read and parse a problem body from the
// response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts problem error details to a domain
// ValidationError. The "body." location prefix is stripped so members are
// plain field names; a location equal to the entity type name stays as is.
func toValidationError(details []errorDetail) *domain.ValidationError {
	results := make([]domain.ValidationResult, 0, len(details))
	for _, d := range details {
		results = append(results, domain.FieldResult(strings.TrimPrefix(d.Location, "body."), d.Message))
	}
	return &domain.ValidationError{Results: results}
}
