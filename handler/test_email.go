package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/mail"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

// TestEmailHandler renders each transactional template against canned data
// so deliverability can be checked from staging without touching real leads.
// It refuses to run on a production deployment that has no provider key.
type TestEmailHandler struct {
	Mail      *mail.Service
	Env       *env.Environment
	Validator *portal.Validator
}

func MakeTestEmailHandler(mailer *mail.Service, environment *env.Environment) TestEmailHandler {
	return TestEmailHandler{
		Mail:      mailer,
		Env:       environment,
		Validator: portal.GetDefaultValidator(),
	}
}

func (h TestEmailHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if h.Env.App.IsProduction() && !h.Env.Mail.HasAPIKey() {
		return endpoint.ForbiddenError("Test endpoint not available")
	}

	request, err := endpoint.ParseRequestBody[payload.TestEmailRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid test data", fields)
	}

	testID := fmt.Sprintf("test-%d", time.Now().UnixMilli())
	result := h.dispatch(r, request, testID)

	response := payload.TestEmailResponse{
		Success:   result.Success,
		MessageID: result.MessageID,
		TestID:    testID,
		Type:      request.Type,
		Recipient: request.Email,
	}

	if result.Err != nil {
		response.Error = result.Err.Error()
	}

	return endpoint.RespondOk(w, response)
}

// Usage answers GET requests with a short self-description of the endpoint.
func (h TestEmailHandler) Usage(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	return endpoint.RespondOk(w, payload.TestEmailUsage{
		Endpoint:    "/api/test-email",
		Method:      "POST",
		Description: "Sends one of the transactional templates to the given address using canned data.",
		Types: []string{
			payload.TestEmailDemo,
			payload.TestEmailWaitlist,
			payload.TestEmailWelcome,
			payload.TestEmailConfirmation,
			payload.TestEmailPasswordReset,
		},
		Example: map[string]string{
			"type":  payload.TestEmailWaitlist,
			"email": "you@example.com",
		},
	})
}

func (h TestEmailHandler) dispatch(r *http.Request, request payload.TestEmailRequest, testID string) mail.Result {
	ctx := r.Context()
	data := request.TestData

	switch request.Type {
	case payload.TestEmailDemo:
		return h.Mail.SendDemoRequestNotification(ctx, mail.DemoRequestData{
			Name:              orDefault(data.Name, "Test User"),
			Email:             request.Email,
			Company:           orDefault(data.Company, "Test Company"),
			Phone:             data.Phone,
			Industry:          orDefault(data.Industry, "Logistics"),
			CompanySize:       orDefault(data.CompanySize, "51-200"),
			CurrentChallenges: orDefault(data.CurrentChallenges, "Exploring reusable packaging and asset tracking."),
			PreferredTime:     data.PreferredTime,
			SpecificInterests: data.SpecificInterests,
		}, testID)
	case payload.TestEmailWaitlist:
		return h.Mail.SendWaitlistNotification(ctx, mail.WaitlistData{
			FirstName:      orDefault(data.FirstName, "Test"),
			LastName:       orDefault(data.LastName, "User"),
			Email:          request.Email,
			Company:        orDefault(data.Company, "Test Company"),
			Role:           orDefault(data.Role, "Operations Manager"),
			InterestedPlan: h.Env.Mail.InterestedPlan,
			EstimatedUsers: data.EstimatedUsers,
		}, testID)
	case payload.TestEmailWelcome:
		return h.Mail.SendWaitlistWelcome(ctx, orDefault(data.FirstName, "Test"), request.Email)
	case payload.TestEmailConfirmation:
		return h.Mail.SendEmailConfirmation(ctx, request.Email, h.callbackURL("email_confirmation", testID))
	case payload.TestEmailPasswordReset:
		return h.Mail.SendPasswordReset(ctx, request.Email, h.callbackURL("password_reset", testID))
	}

	return mail.Result{Err: fmt.Errorf("unknown test email type [%s]", request.Type)}
}

func (h TestEmailHandler) callbackURL(kind, testID string) string {
	return fmt.Sprintf("%s/auth/callback?type=%s&code=test-code-%s", h.Env.App.URL, kind, testID)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
