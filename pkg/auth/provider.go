package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

// Provider talks to the hosted authentication service. Account sessions,
// password hashing and token issuance all live there; this client only asks
// it to resend signup-confirmation emails.
type Provider struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

type resendRequest struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

type providerError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func MakeProvider(authEnv *env.AuthEnvironment) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(authEnv.BaseURL, "/"),
		serviceKey: authEnv.ServiceKey,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// ResendSignupConfirmation asks the provider to re-send the account
// confirmation email, redirecting the user to redirectTo once confirmed.
func (p *Provider) ResendSignupConfirmation(ctx context.Context, email, redirectTo string) error {
	body, err := json.Marshal(resendRequest{
		Type:  "signup",
		Email: email,
	})

	if err != nil {
		return fmt.Errorf("auth: encoding resend request: %w", err)
	}

	endpoint := p.baseURL + "/auth/v1/resend"
	if redirectTo != "" {
		endpoint += "?redirect_to=" + url.QueryEscape(redirectTo)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("auth: building resend request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.serviceKey)
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("auth: resend request failed: %w", err)
	}

	defer portal.CloseWithLog(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return fmt.Errorf("auth: %s", p.readErrorMessage(resp))
}

func (p *Provider) readErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(data) == 0 {
		return fmt.Sprintf("provider returned status %d", resp.StatusCode)
	}

	var parsed providerError
	if err := json.Unmarshal(data, &parsed); err == nil {
		for _, candidate := range []string{parsed.Msg, parsed.Message, parsed.ErrorDescription} {
			if strings.TrimSpace(candidate) != "" {
				return candidate
			}
		}
	}

	return fmt.Sprintf("provider returned status %d", resp.StatusCode)
}
