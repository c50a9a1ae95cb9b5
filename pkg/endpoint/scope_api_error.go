package endpoint

import (
	"errors"
	"fmt"
	baseHttp "net/http"
	"strings"

	"github.com/getsentry/sentry-go"

	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type ScopeApiError struct {
	scope   *sentry.Scope
	request *baseHttp.Request
	apiErr  *ApiError
}

func NewScopeApiError(scope *sentry.Scope, r *baseHttp.Request, apiErr *ApiError) *ScopeApiError {
	return &ScopeApiError{scope: scope, request: r, apiErr: apiErr}
}

func (s *ScopeApiError) RequestID() string {
	if s == nil || s.request == nil {
		return ""
	}

	if v, ok := s.request.Context().Value(portal.RequestIDKey).(string); ok {
		if id := strings.TrimSpace(v); id != "" {
			return id
		}
	}

	return strings.TrimSpace(s.request.Header.Get(portal.RequestIDHeader))
}

func (s *ScopeApiError) Enrich() {
	if s == nil || s.scope == nil || s.request == nil || s.apiErr == nil {
		return
	}

	s.scope.SetRequest(s.request)
	s.scope.SetExtra("api_error_status_text", baseHttp.StatusText(s.apiErr.Status))
	s.scope.SetExtra("api_error_message", s.apiErr.Message)

	if requestID := s.RequestID(); requestID != "" {
		s.scope.SetTag("http.request_id", requestID)
	}

	if s.apiErr.Data != nil {
		s.scope.SetExtra("api_error_data", s.apiErr.Data)
	}

	if s.apiErr.Err != nil {
		s.scope.SetExtra("api_error_cause", s.apiErr.Err.Error())
		s.scope.SetTag("api.error.cause_type", fmt.Sprintf("%T", s.apiErr.Err))
		s.scope.SetExtra("api_error_cause_chain", s.buildErrorChain(s.apiErr.Err))
	}

	meta := portal.ExtractClientMeta(s.request)

	if meta.IP != nil {
		s.scope.SetExtra("http_client_ip", *meta.IP)
	}

	s.scope.SetExtra("http_user_agent", meta.UserAgent)
	s.scope.SetExtra("http_referrer", meta.Referrer)
}

func (s *ScopeApiError) buildErrorChain(err error) []string {
	chain := make([]string, 0, 4)

	for current := err; current != nil; current = errors.Unwrap(current) {
		chain = append(chain, current.Error())
	}

	return chain
}
