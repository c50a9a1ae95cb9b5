package payload

const (
	TestEmailDemo          = "demo"
	TestEmailWaitlist      = "waitlist"
	TestEmailWelcome       = "welcome"
	TestEmailConfirmation  = "confirmation"
	TestEmailPasswordReset = "password-reset"
)

type TestEmailRequest struct {
	Type     string        `json:"type" validate:"required,oneof=demo waitlist welcome confirmation password-reset"`
	Email    string        `json:"email" validate:"required,email"`
	TestData TestEmailData `json:"testData" validate:"omitempty"`
}

// TestEmailData carries optional overrides for the rendered fixtures. Any
// field left empty falls back to a canned value in the handler.
type TestEmailData struct {
	Name              string   `json:"name"`
	Company           string   `json:"company"`
	Phone             string   `json:"phone"`
	Industry          string   `json:"industry"`
	CompanySize       string   `json:"companySize"`
	CurrentChallenges string   `json:"currentChallenges"`
	PreferredTime     string   `json:"preferredTime"`
	SpecificInterests []string `json:"specificInterests"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Role              string   `json:"role"`
	EstimatedUsers    string   `json:"estimatedUsers"`
}

type TestEmailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
	TestID    string `json:"testId"`
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
}

type TestEmailUsage struct {
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Description string            `json:"description"`
	Types       []string          `json:"types"`
	Example     map[string]string `json:"example"`
}
