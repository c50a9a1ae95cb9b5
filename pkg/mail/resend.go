package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender submits messages through the Resend transactional email API.
type ResendSender struct {
	client *resend.Client
}

func MakeResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
	}
}

func (s *ResendSender) Send(ctx context.Context, msg *Message) (string, error) {
	tags := make([]resend.Tag, 0, len(msg.Tags))
	for _, tag := range msg.Tags {
		tags = append(tags, resend.Tag{Name: tag.Name, Value: tag.Value})
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.Html,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
		Tags:    tags,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)

	if err != nil {
		return "", fmt.Errorf("resend: sending [%s] failed: %w", msg.Subject, err)
	}

	return sent.Id, nil
}
