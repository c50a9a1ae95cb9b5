package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
)

func formRequest(ip string) *http.Request {
	r := httptest.NewRequest("POST", "/api/newsletter", nil)
	r.RemoteAddr = ip + ":51234"

	return r
}

func TestFormGuardCountsRejectionsAndBlocks(t *testing.T) {
	guard := MakeFormGuard()

	rejecting := guard.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		return endpoint.BadRequestError("Invalid form data")
	})

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		if apiErr := rejecting(w, formRequest("203.0.113.7")); apiErr == nil || apiErr.Status != http.StatusBadRequest {
			t.Fatalf("expected 400 on attempt %d, got %+v", i, apiErr)
		}
	}

	w := httptest.NewRecorder()
	apiErr := rejecting(w, formRequest("203.0.113.7"))

	if apiErr == nil || apiErr.Status != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after repeated rejections, got %+v", apiErr)
	}
}

func TestFormGuardIgnoresSuccessfulSubmissions(t *testing.T) {
	guard := MakeFormGuard()

	succeeding := guard.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		return nil
	})

	for i := 0; i < 25; i++ {
		w := httptest.NewRecorder()
		if apiErr := succeeding(w, formRequest("203.0.113.8")); apiErr != nil {
			t.Fatalf("expected success on attempt %d, got %+v", i, apiErr)
		}
	}
}

func TestFormGuardDoesNotCountServerErrors(t *testing.T) {
	guard := MakeFormGuard()

	failing := guard.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		return endpoint.InternalError("Database error")
	})

	for i := 0; i < 15; i++ {
		w := httptest.NewRecorder()
		apiErr := failing(w, formRequest("203.0.113.9"))

		if apiErr == nil || apiErr.Status != http.StatusInternalServerError {
			t.Fatalf("expected 500 to pass through on attempt %d, got %+v", i, apiErr)
		}
	}
}

func TestFormGuardKeysByClientIP(t *testing.T) {
	guard := MakeFormGuard()

	rejecting := guard.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		return endpoint.BadRequestError("Invalid form data")
	})

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		_ = rejecting(w, formRequest("203.0.113.10"))
	}

	w := httptest.NewRecorder()
	apiErr := rejecting(w, formRequest("198.51.100.2"))

	if apiErr == nil || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected a different IP to stay unblocked, got %+v", apiErr)
	}
}
