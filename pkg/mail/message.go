package mail

import "context"

// Tag is a short categorical label attached to a message for provider-side
// analytics. Values must satisfy the provider's restrictive grammar; use
// portal.SanitiseTagValue before putting free text here.
type Tag struct {
	Name  string
	Value string
}

type Message struct {
	From    string
	To      []string
	Subject string
	Html    string
	Text    string
	ReplyTo string
	Tags    []Tag
}

// Sender submits a rendered message to the transactional email provider and
// returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// Rendered is a template's output, ready to wrap in a Message.
type Rendered struct {
	Subject string
	Html    string
	Text    string
}

// Result reports one notification attempt. Attempts never fail the request
// that triggered them; the handler surfaces Success as a boolean flag.
type Result struct {
	Success   bool
	MessageID string
	Err       error
}
