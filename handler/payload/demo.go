package payload

import (
	"fmt"
	"strings"
)

type DemoRequest struct {
	Name              string       `json:"name" validate:"required,min=2"`
	Email             string       `json:"email" validate:"required,email"`
	Company           string       `json:"company" validate:"required,min=2"`
	Phone             string       `json:"phone" validate:"omitempty"`
	Industry          string       `json:"industry" validate:"required"`
	CompanySize       string       `json:"companySize" validate:"required"`
	CurrentChallenges string       `json:"currentChallenges" validate:"required,min=10"`
	PreferredTime     string       `json:"preferredTime" validate:"omitempty"`
	SpecificInterests []string     `json:"specificInterests" validate:"omitempty"`
	AgreedToTerms     FlexibleBool `json:"agreedToTerms" validate:"eq=true"`
}

// ComposedMessage folds the demo questionnaire into the single message
// column shared with general contact inquiries.
func (r DemoRequest) ComposedMessage() string {
	preferred := r.PreferredTime
	if preferred == "" {
		preferred = "Not specified"
	}

	interests := "None specified"
	if len(r.SpecificInterests) > 0 {
		interests = strings.Join(r.SpecificInterests, ", ")
	}

	return fmt.Sprintf(
		"Industry: %s\nCompany Size: %s\nCurrent Challenges: %s\nPreferred Time: %s\nSpecific Interests: %s",
		r.Industry,
		r.CompanySize,
		r.CurrentChallenges,
		preferred,
		interests,
	)
}
