package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
)

type fakeSender struct {
	sent []*Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg *Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	f.sent = append(f.sent, msg)

	return "msg-123", nil
}

func testMailEnv() *env.MailEnvironment {
	return &env.MailEnvironment{
		APIKey:         "re_test_key",
		From:           "Resend-It <noreply@example.test>",
		ReplyTo:        "support@example.test",
		HelpInbox:      "help@example.test",
		SubscribeInbox: "subscribe@example.test",
		InterestedPlan: "lite",
	}
}

func TestContactNotificationRouting(t *testing.T) {
	sender := &fakeSender{}
	service := MakeService(sender, testMailEnv())

	result := service.SendContactNotification(context.Background(), ContactData{
		Name:    "Jordan Lee",
		Email:   "jordan@example.test",
		Company: "Freight Co.",
		Message: "Tell me more.",
	})

	if !result.Success || result.MessageID != "msg-123" {
		t.Fatalf("unexpected result %+v", result)
	}

	msg := sender.sent[0]

	if msg.To[0] != "help@example.test" {
		t.Fatalf("expected help inbox, got %q", msg.To[0])
	}

	if msg.ReplyTo != "jordan@example.test" {
		t.Fatalf("expected reply-to pointing at the submitter, got %q", msg.ReplyTo)
	}

	if msg.Subject != "New Contact Message from Jordan Lee" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}

	if msg.Tags[1].Name != "company" || msg.Tags[1].Value != "Freight_Co_" {
		t.Fatalf("expected sanitised company tag, got %+v", msg.Tags[1])
	}
}

func TestWaitlistWelcomeGoesToTheSubscriber(t *testing.T) {
	sender := &fakeSender{}
	service := MakeService(sender, testMailEnv())

	result := service.SendWaitlistWelcome(context.Background(), "Ada", "ada@example.test")
	if !result.Success {
		t.Fatalf("unexpected result %+v", result)
	}

	msg := sender.sent[0]

	if msg.To[0] != "ada@example.test" {
		t.Fatalf("expected the subscriber address, got %q", msg.To[0])
	}

	if msg.Tags[1].Value != "lite" {
		t.Fatalf("expected the configured plan tag, got %+v", msg.Tags[1])
	}
}

func TestNewsletterNotificationGoesToSubscribeInbox(t *testing.T) {
	sender := &fakeSender{}
	service := MakeService(sender, testMailEnv())

	service.SendNewsletterNotification(context.Background(), "reader@example.test", "uuid-1")

	msg := sender.sent[0]

	if msg.To[0] != "subscribe@example.test" {
		t.Fatalf("expected subscribe inbox, got %q", msg.To[0])
	}

	if msg.ReplyTo != "reader@example.test" {
		t.Fatalf("expected reply-to set to the subscriber, got %q", msg.ReplyTo)
	}
}

func TestNotificationFailuresAreSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	service := MakeService(sender, testMailEnv())

	result := service.SendNewsletterWelcome(context.Background(), "reader@example.test")

	if result.Success {
		t.Fatalf("expected failure result")
	}

	if result.Err == nil || !strings.Contains(result.Err.Error(), "provider down") {
		t.Fatalf("expected the provider error in the result, got %v", result.Err)
	}
}

func TestSendEnforcesSenderIdentity(t *testing.T) {
	sender := &fakeSender{}
	service := MakeService(sender, testMailEnv())

	if _, err := service.Send(context.Background(), &Message{
		From:    "Spoofed <attacker@example.test>",
		To:      []string{"a@b.test"},
		Subject: "Hello",
		Html:    "<p>Hi</p>",
	}); err != nil {
		t.Fatalf("send: %v", err)
	}

	if sender.sent[0].From != "Resend-It <noreply@example.test>" {
		t.Fatalf("expected the deployment sender, got %q", sender.sent[0].From)
	}

	if sender.sent[0].ReplyTo != "support@example.test" {
		t.Fatalf("expected the configured reply-to default, got %q", sender.sent[0].ReplyTo)
	}

	sender.err = errors.New("bad payload")

	if _, err := service.Send(context.Background(), &Message{To: []string{"a@b.test"}}); err == nil {
		t.Fatalf("expected provider error to propagate")
	}
}
