package env

// MailEnvironment fixes the sender identity per deployment. Notifications
// for staff land in the help inbox; newsletter signups are mirrored to the
// subscriptions inbox for provider-side analytics.
type MailEnvironment struct {
	APIKey         string `validate:"omitempty,min=8"`
	From           string `validate:"required"`
	ReplyTo        string `validate:"required,email"`
	HelpInbox      string `validate:"required,email"`
	SubscribeInbox string `validate:"required,email"`
	InterestedPlan string `validate:"required,lowercase"`
}

func (e MailEnvironment) HasAPIKey() bool {
	return e.APIKey != ""
}
