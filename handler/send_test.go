package handler_test

import (
	"net/http"
	"testing"

	"github.com/rmourey26/resendit-asset-intel-website-blog/handler"
	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
)

func newSendHandler(sender *recordingSender) handler.SendHandler {
	mailEnv := testMailEnv()

	return handler.MakeSendHandler(newMailService(sender, &mailEnv))
}

func TestSendReturnsProviderID(t *testing.T) {
	sender := &recordingSender{}
	send := newSendHandler(sender)

	body := `{
		"to": "someone@example.test",
		"subject": "Quarterly Update",
		"html": "<p>Hello</p>\n\n  <p>World</p>"
	}`

	w, apiErr := callHandler(t, send.Handle, postJSON(t, "/api/send", body))
	if apiErr != nil {
		t.Fatalf("unexpected error %+v", apiErr)
	}

	resp := decodeBody[payload.SendResponse](t, w)

	if resp.Data.ID != "msg-1" {
		t.Fatalf("unexpected id %q", resp.Data.ID)
	}

	if sender.sent[0].Html != "<p>Hello</p> <p>World</p>" {
		t.Fatalf("expected whitespace runs collapsed, got %q", sender.sent[0].Html)
	}

	if sender.sent[0].From != "Resend-It <noreply@example.test>" {
		t.Fatalf("expected the deployment sender, got %q", sender.sent[0].From)
	}

	if sender.sent[0].ReplyTo != "support@example.test" {
		t.Fatalf("expected the configured reply-to, got %q", sender.sent[0].ReplyTo)
	}
}

func TestSendIgnoresCallerSuppliedFrom(t *testing.T) {
	sender := &recordingSender{}
	send := newSendHandler(sender)

	body := `{
		"from": "Spoofed <attacker@example.test>",
		"to": "someone@example.test",
		"subject": "Hello",
		"html": "<p>Hi</p>",
		"replyTo": "sales@example.test"
	}`

	if _, apiErr := callHandler(t, send.Handle, postJSON(t, "/api/send", body)); apiErr != nil {
		t.Fatalf("unexpected error %+v", apiErr)
	}

	if sender.sent[0].From != "Resend-It <noreply@example.test>" {
		t.Fatalf("expected the deployment sender, got %q", sender.sent[0].From)
	}

	if sender.sent[0].ReplyTo != "sales@example.test" {
		t.Fatalf("expected the caller's reply-to to survive, got %q", sender.sent[0].ReplyTo)
	}
}

func TestSendAcceptsRecipientList(t *testing.T) {
	sender := &recordingSender{}
	send := newSendHandler(sender)

	body := `{
		"to": ["a@example.test", "b@example.test"],
		"subject": "Hello",
		"html": "<p>Hi</p>",
		"tags": [{"name": "type", "value": "company launch!"}]
	}`

	if _, apiErr := callHandler(t, send.Handle, postJSON(t, "/api/send", body)); apiErr != nil {
		t.Fatalf("unexpected error %+v", apiErr)
	}

	if len(sender.sent[0].To) != 2 {
		t.Fatalf("expected both recipients, got %+v", sender.sent[0].To)
	}

	if sender.sent[0].Tags[0].Value != "company_launch_" {
		t.Fatalf("expected sanitised tag value, got %q", sender.sent[0].Tags[0].Value)
	}
}

func TestSendValidation(t *testing.T) {
	send := newSendHandler(&recordingSender{})

	_, apiErr := callHandler(t, send.Handle, postJSON(t, "/api/send", `{"subject":"x"}`))

	if apiErr == nil || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", apiErr)
	}
}

func TestSendProviderErrorIsBadRequest(t *testing.T) {
	sender := &recordingSender{failFor: map[string]bool{"Broken": true}}
	send := newSendHandler(sender)

	body := `{"to": "a@example.test", "subject": "Broken", "html": "<p>x</p>"}`

	_, apiErr := callHandler(t, send.Handle, postJSON(t, "/api/send", body))

	if apiErr == nil || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected provider failure to map to 400, got %+v", apiErr)
	}
}
