package env

// AuthEnvironment points at the hosted authentication provider. This
// service never verifies credentials itself; it only asks the provider to
// resend confirmation emails.
type AuthEnvironment struct {
	BaseURL    string `validate:"required,url"`
	ServiceKey string `validate:"required,min=8"`
}
