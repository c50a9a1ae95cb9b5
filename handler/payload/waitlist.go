package payload

type WaitlistRequest struct {
	FirstName       string       `json:"firstName" validate:"required,min=2"`
	LastName        string       `json:"lastName" validate:"required,min=2"`
	Email           string       `json:"email" validate:"required,email"`
	Company         string       `json:"company" validate:"required,min=2"`
	Role            string       `json:"role" validate:"required"`
	EstimatedUsers  string       `json:"estimatedUsers" validate:"omitempty"`
	AgreedToUpdates FlexibleBool `json:"agreedToUpdates" validate:"omitempty"`
}

type WaitlistResponse struct {
	Success          bool   `json:"success"`
	EmailSent        bool   `json:"emailSent"`
	NotificationSent bool   `json:"notificationSent"`
	Message          string `json:"message"`
}
