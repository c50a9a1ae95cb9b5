package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const MaxRequestSize = 1 << 20 // 1MB limit

// ParseRequestBody decodes the request body as JSON into T. Decode failures
// bubble up as errors; the lead handlers map them to a generic 500, which is
// the observed contract for malformed bodies.
func ParseRequestBody[T any](r *http.Request) (T, error) {
	var request T

	defer func(body io.ReadCloser) {
		if issue := body.Close(); issue != nil {
			slog.Error("ParseRequestBody: " + issue.Error())
		}
	}(r.Body)

	data, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestSize))
	if err != nil {
		return request, fmt.Errorf("failed to read the given request body: %w", err)
	}

	if len(data) == 0 {
		return request, errors.New("empty request body")
	}

	if err = json.Unmarshal(data, &request); err != nil {
		return request, fmt.Errorf("failed to unmarshal the given request body: %w", err)
	}

	return request, nil
}

func RespondOk(w http.ResponseWriter, payload any) *ApiError {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "err", err)

		return InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func InternalError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(msg),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(msg, "error", err)

	return &ApiError{
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusBadRequest,
		Err:     errors.New(msg),
	}
}

// ValidationError carries the per-field violations back to the form so the
// caller can render them next to each input.
func ValidationError(msg string, fields map[string]string) *ApiError {
	data := make(map[string]any, len(fields))
	for field, message := range fields {
		data[field] = message
	}

	return &ApiError{
		Message: msg,
		Status:  http.StatusBadRequest,
		Data:    data,
		Err:     errors.New(msg),
	}
}

func ForbiddenError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusForbidden,
		Err:     errors.New(msg),
	}
}

func TooManyRequestsError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusTooManyRequests,
		Err:     errors.New(msg),
	}
}

func NotFound(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusNotFound,
		Err:     errors.New(msg),
	}
}
