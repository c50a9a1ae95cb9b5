package payload

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type NewsletterResponse struct {
	Success               bool   `json:"success"`
	WelcomeEmailSent      bool   `json:"welcomeEmailSent"`
	NotificationEmailSent bool   `json:"notificationEmailSent"`
	Message               string `json:"message"`
}
