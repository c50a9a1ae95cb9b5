package payload

type ConfirmationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SimpleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
