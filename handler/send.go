package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/mail"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

var collapseWhitespace = regexp.MustCompile(`\s+`)

// SendHandler is the thin pass-through to the email provider. Unlike the
// form pipelines it propagates provider errors to the caller.
type SendHandler struct {
	Mail      *mail.Service
	Validator *portal.Validator
}

func MakeSendHandler(mailer *mail.Service) SendHandler {
	return SendHandler{
		Mail:      mailer,
		Validator: portal.GetDefaultValidator(),
	}
}

func (h SendHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.SendRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Failed to send email", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid email payload", fields)
	}

	msg := &mail.Message{
		To:      request.To,
		Subject: request.Subject,
		Html:    strings.TrimSpace(collapseWhitespace.ReplaceAllString(request.Html, " ")),
		Text:    request.Text,
		ReplyTo: request.ReplyTo,
	}

	for _, tag := range request.Tags {
		msg.Tags = append(msg.Tags, mail.Tag{
			Name:  tag.Name,
			Value: portal.SanitiseTagValue(tag.Value),
		})
	}

	id, err := h.Mail.Send(r.Context(), msg)
	if err != nil {
		return endpoint.BadRequestError(err.Error())
	}

	return endpoint.RespondOk(w, payload.SendResponse{
		Data: payload.SendResponseData{ID: id},
	})
}
