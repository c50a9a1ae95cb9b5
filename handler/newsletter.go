package handler

import (
	"errors"
	"net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/database/repository"
	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/mail"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type NewsletterHandler struct {
	Newsletter *repository.Newsletter
	Mail       *mail.Service
	Validator  *portal.Validator
}

func MakeNewsletterHandler(newsletter *repository.Newsletter, mailer *mail.Service) NewsletterHandler {
	return NewsletterHandler{
		Newsletter: newsletter,
		Mail:       mailer,
		Validator:  portal.GetDefaultValidator(),
	}
}

func (h NewsletterHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.NewsletterRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid email address", fields)
	}

	meta := portal.ExtractClientMeta(r)

	subscriber, err := h.Newsletter.Subscribe(database.SubscriberAttrs{
		Email:     request.Email,
		IPAddress: meta.IP,
		UserAgent: optional(meta.UserAgent),
		Referrer:  optional(meta.Referrer),
	})

	if err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			return endpoint.BadRequestError("Email already subscribed to newsletter")
		}

		return endpoint.LogInternalError("Database error", err)
	}

	welcome := h.Mail.SendNewsletterWelcome(r.Context(), request.Email)
	notification := h.Mail.SendNewsletterNotification(r.Context(), request.Email, subscriber.UUID)

	return endpoint.RespondOk(w, payload.NewsletterResponse{
		Success:               true,
		WelcomeEmailSent:      welcome.Success,
		NotificationEmailSent: notification.Success,
		Message:               "Successfully subscribed to newsletter",
	})
}
