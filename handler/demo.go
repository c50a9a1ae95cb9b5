package handler

import (
	"net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/database/repository"
	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/mail"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type DemoHandler struct {
	Inquiries *repository.Inquiries
	Mail      *mail.Service
	Validator *portal.Validator
}

func MakeDemoHandler(inquiries *repository.Inquiries, mailer *mail.Service) DemoHandler {
	return DemoHandler{
		Inquiries: inquiries,
		Mail:      mailer,
		Validator: portal.GetDefaultValidator(),
	}
}

func (h DemoHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.DemoRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid form data", fields)
	}

	meta := portal.ExtractClientMeta(r)

	inquiry, err := h.Inquiries.Create(database.InquiryAttrs{
		Name:        request.Name,
		Email:       request.Email,
		Company:     request.Company,
		Phone:       optional(request.Phone),
		Subject:     "Demo Request",
		Message:     request.ComposedMessage(),
		InquiryType: database.InquiryTypeDemo,
		IPAddress:   meta.IP,
		UserAgent:   optional(meta.UserAgent),
		Referrer:    optional(meta.Referrer),
	})

	if err != nil {
		return endpoint.LogInternalError("Failed to save inquiry", err)
	}

	h.Mail.SendDemoRequestNotification(r.Context(), mail.DemoRequestData{
		Name:              request.Name,
		Email:             request.Email,
		Company:           request.Company,
		Phone:             request.Phone,
		Industry:          request.Industry,
		CompanySize:       request.CompanySize,
		CurrentChallenges: request.CurrentChallenges,
		PreferredTime:     request.PreferredTime,
		SpecificInterests: request.SpecificInterests,
	}, inquiry.UUID)

	return endpoint.RespondOk(w, payload.InquiryResponse{
		Success:   true,
		Message:   "Demo request submitted successfully",
		InquiryID: inquiry.UUID,
	})
}
