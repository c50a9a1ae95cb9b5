package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/database/repository"
	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/mail"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type WaitlistHandler struct {
	Waitlist  *repository.Waitlist
	Mail      *mail.Service
	Env       *env.MailEnvironment
	Validator *portal.Validator
}

func MakeWaitlistHandler(waitlist *repository.Waitlist, mailer *mail.Service, mailEnv *env.MailEnvironment) WaitlistHandler {
	return WaitlistHandler{
		Waitlist:  waitlist,
		Mail:      mailer,
		Env:       mailEnv,
		Validator: portal.GetDefaultValidator(),
	}
}

func (h WaitlistHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.WaitlistRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid form data", fields)
	}

	meta := portal.ExtractClientMeta(r)

	entry, err := h.Waitlist.Join(database.WaitlistAttrs{
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Email:           request.Email,
		Company:         request.Company,
		Role:            request.Role,
		InterestedPlan:  h.Env.InterestedPlan,
		EstimatedUsers:  optional(request.EstimatedUsers),
		AgreedToUpdates: request.AgreedToUpdates.Bool(),
		IPAddress:       meta.IP,
		UserAgent:       optional(meta.UserAgent),
		Referrer:        optional(meta.Referrer),
	})

	if err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			return endpoint.BadRequestError("Email already registered")
		}

		return endpoint.LogInternalError("Database error", err)
	}

	welcome := h.Mail.SendWaitlistWelcome(r.Context(), request.FirstName, request.Email)

	if welcome.Success {
		if markErr := h.Waitlist.MarkNotified(entry); markErr != nil {
			slog.Error("waitlist: could not stamp notified_at", "email", entry.Email, "error", markErr)
		}
	}

	notification := h.Mail.SendWaitlistNotification(r.Context(), mail.WaitlistData{
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Email:          request.Email,
		Company:        request.Company,
		Role:           request.Role,
		InterestedPlan: h.Env.InterestedPlan,
		EstimatedUsers: request.EstimatedUsers,
	}, entry.UUID)

	return endpoint.RespondOk(w, payload.WaitlistResponse{
		Success:          true,
		EmailSent:        welcome.Success,
		NotificationSent: notification.Success,
		Message:          "Successfully joined waitlist",
	})
}
