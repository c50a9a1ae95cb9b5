package handler

import (
	"net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/auth"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

// ConfirmationHandler asks the hosted auth provider to resend the signup
// confirmation email for an address that never finished registering.
type ConfirmationHandler struct {
	Auth      *auth.Provider
	App       *env.AppEnvironment
	Validator *portal.Validator
}

func MakeConfirmationHandler(provider *auth.Provider, app *env.AppEnvironment) ConfirmationHandler {
	return ConfirmationHandler{
		Auth:      provider,
		App:       app,
		Validator: portal.GetDefaultValidator(),
	}
}

func (h ConfirmationHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.ConfirmationRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid email address", fields)
	}

	redirectTo := h.App.URL + "/auth/callback?type=email_confirmation"

	if err = h.Auth.ResendSignupConfirmation(r.Context(), request.Email, redirectTo); err != nil {
		return endpoint.BadRequestError(err.Error())
	}

	return endpoint.RespondOk(w, payload.SimpleResponse{
		Success: true,
		Message: "Confirmation email sent successfully",
	})
}
