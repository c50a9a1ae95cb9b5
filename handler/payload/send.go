package payload

type SendTag struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// SendRequest carries no sender address on purpose. The sender identity is
// fixed per deployment; the provider never sees a caller-supplied from.
type SendRequest struct {
	To      StringList `json:"to" validate:"required,min=1,dive,email"`
	Subject string     `json:"subject" validate:"required"`
	Html    string     `json:"html" validate:"required"`
	Text    string     `json:"text" validate:"omitempty"`
	ReplyTo string     `json:"replyTo" validate:"omitempty,email"`
	Tags    []SendTag  `json:"tags" validate:"omitempty,dive"`
}

type SendResponse struct {
	Data SendResponseData `json:"data"`
}

type SendResponseData struct {
	ID string `json:"id"`
}
