package payload

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"required,min=2"`
	Phone   string `json:"phone" validate:"omitempty"`
	Message string `json:"message" validate:"required,min=10"`
}

type InquiryResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId"`
}
