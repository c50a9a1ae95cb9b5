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

type ContactHandler struct {
	Inquiries *repository.Inquiries
	Mail      *mail.Service
	Validator *portal.Validator
}

func MakeContactHandler(inquiries *repository.Inquiries, mailer *mail.Service) ContactHandler {
	return ContactHandler{
		Inquiries: inquiries,
		Mail:      mailer,
		Validator: portal.GetDefaultValidator(),
	}
}

func (h ContactHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.ContactRequest](r)
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
		Subject:     "Contact Inquiry",
		Message:     request.Message,
		InquiryType: database.InquiryTypeGeneral,
		IPAddress:   meta.IP,
		UserAgent:   optional(meta.UserAgent),
		Referrer:    optional(meta.Referrer),
	})

	if err != nil {
		return endpoint.LogInternalError("Failed to save inquiry", err)
	}

	// Notification failures never surface to the submitter; the lead is
	// already persisted.
	h.Mail.SendContactNotification(r.Context(), mail.ContactData{
		Name:    request.Name,
		Email:   request.Email,
		Company: request.Company,
		Phone:   request.Phone,
		Message: request.Message,
	})

	return endpoint.RespondOk(w, payload.InquiryResponse{
		Success:   true,
		Message:   "Contact inquiry submitted successfully",
		InquiryID: inquiry.UUID,
	})
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
