package mail

import (
	"context"
	"log/slog"

	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

// Service owns every transactional email this system sends. Each method is
// one notification attempt: failures are logged and folded into the Result,
// never propagated, so a degraded provider can not lose a lead that already
// reached the database.
type Service struct {
	sender Sender
	env    *env.MailEnvironment
}

func MakeService(sender Sender, env *env.MailEnvironment) *Service {
	return &Service{
		sender: sender,
		env:    env,
	}
}

// Send is the raw passthrough used by the generic send endpoint. Unlike the
// notification methods it does propagate errors; its caller owns the
// failure policy. The sender identity is always the deployment's own, and
// replies default to the configured reply-to inbox.
func (s *Service) Send(ctx context.Context, msg *Message) (string, error) {
	msg.From = s.env.From

	if msg.ReplyTo == "" {
		msg.ReplyTo = s.env.ReplyTo
	}

	return s.sender.Send(ctx, msg)
}

func (s *Service) SendContactNotification(ctx context.Context, data ContactData) Result {
	rendered := ContactNotification(data)

	return s.attempt(ctx, &Message{
		From:    s.env.From,
		To:      []string{s.env.HelpInbox},
		Subject: rendered.Subject,
		Html:    rendered.Html,
		Text:    rendered.Text,
		ReplyTo: data.Email,
		Tags: []Tag{
			{Name: "type", Value: "contact-inquiry"},
			{Name: "company", Value: portal.SanitiseTagValue(data.Company)},
		},
	})
}

func (s *Service) SendDemoRequestNotification(ctx context.Context, data DemoRequestData, inquiryID string) Result {
	rendered := DemoRequestNotification(data, inquiryID)

	return s.attempt(ctx, &Message{
		From:    s.env.From,
		To:      []string{s.env.HelpInbox},
		Subject: rendered.Subject,
		Html:    rendered.Html,
		Text:    rendered.Text,
		ReplyTo: data.Email,
		Tags: []Tag{
			{Name: "type", Value: "demo-request"},
			{Name: "company", Value: portal.SanitiseTagValue(data.Company)},
			{Name: "industry", Value: portal.SanitiseTagValue(data.Industry)},
		},
	})
}

func (s *Service) SendWaitlistWelcome(ctx context.Context, firstName, email string) Result {
	rendered := WaitlistWelcome(firstName)

	return s.attempt(ctx, &Message{
		From:    s.env.From,
		To:      []string{email},
		Subject: rendered.Subject,
		Html:    rendered.Html,
		Text:    rendered.Text,
		ReplyTo: s.env.ReplyTo,
		Tags: []Tag{
			{Name: "type", Value: "waitlist-welcome"},
			{Name: "plan", Value: portal.SanitiseTagValue(s.env.InterestedPlan)},
			{Name: "user", Value: portal.SanitiseTagValue(firstName)},
		},
	})
}

func (s *Service) SendWaitlistNotification(ctx context.Context, data WaitlistData, entryID string) Result {
	rendered := WaitlistNotification(data, entryID)

	return s.attempt(ctx, &Message{
		From:    s.env.From,
		To:      []string{s.env.HelpInbox},
		Subject: rendered.Subject,
		Html:    rendered.Html,
		Text:    rendered.Text,
		ReplyTo: data.Email,
		Tags: []Tag{
			{Name: "type", Value: "waitlist-signup"},
			{Name: "company", Value: portal.SanitiseTagValue(data.Company)},
			{Name: "plan", Value: portal.SanitiseTagValue(data.InterestedPlan)},
		},
	})
}

func (s *Service) SendNewsletterWelcome(ctx context.Context, email string) Result {
	rendered := NewsletterWelcome(email)

	return s.attempt(ctx, &Message{
		From:    s.env.From,
		To:      []string{email},
		Subject: rendered.Subject,
		Html:    rendered.Html,
		Text:    rendered.Text,
		ReplyTo: s.env.ReplyTo,
		Tags: []Tag{
			{Name: "type", Value: "newsletter-welcome"},
			{Name: "source", Value: "website"},
		},
	})
}

func (s *Service) SendNewsletterNotification(ctx context.Context, email, subscriberID string) Result {
	rendered := NewsletterNotification(email, subscriberID)

	return s.attempt(ctx, &Message{
		From:    s.env.From,
		To:      []string{s.env.SubscribeInbox},
		Subject: rendered.Subject,
		Html:    rendered.Html,
		Text:    rendered.Text,
		ReplyTo: email,
		Tags: []Tag{
			{Name: "type", Value: "newsletter-notification"},
			{Name: "source", Value: "website"},
		},
	})
}

func (s *Service) SendEmailConfirmation(ctx context.Context, email, confirmationURL string) Result {
	rendered := EmailConfirmation(confirmationURL)

	return s.attempt(ctx, &Message{
		From:    s.env.From,
		To:      []string{email},
		Subject: rendered.Subject,
		Html:    rendered.Html,
		Text:    rendered.Text,
		Tags: []Tag{
			{Name: "type", Value: "email-confirmation"},
		},
	})
}

func (s *Service) SendPasswordReset(ctx context.Context, email, resetURL string) Result {
	rendered := PasswordReset(resetURL)

	return s.attempt(ctx, &Message{
		From:    s.env.From,
		To:      []string{email},
		Subject: rendered.Subject,
		Html:    rendered.Html,
		Text:    rendered.Text,
		Tags: []Tag{
			{Name: "type", Value: "password-reset"},
		},
	})
}

func (s *Service) attempt(ctx context.Context, msg *Message) Result {
	id, err := s.sender.Send(ctx, msg)

	if err != nil {
		slog.Error("notification send failed", "subject", msg.Subject, "err", err)

		return Result{Success: false, Err: err}
	}

	slog.Info("notification sent", "subject", msg.Subject, "message_id", id)

	return Result{Success: true, MessageID: id}
}
