package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/gorm"
)

type Inquiries struct {
	DB *database.Connection
}

// Create always inserts. Inquiries carry no uniqueness constraint; the same
// person may write in twice.
func (i Inquiries) Create(attrs database.InquiryAttrs) (*database.Inquiry, error) {
	inquiry := database.Inquiry{
		UUID:        uuid.NewString(),
		Name:        attrs.Name,
		Email:       attrs.Email,
		Company:     attrs.Company,
		Phone:       attrs.Phone,
		Subject:     attrs.Subject,
		Message:     attrs.Message,
		InquiryType: attrs.InquiryType,
		Priority:    database.InquiryPriorityMedium,
		Status:      database.InquiryStatusNew,
		Source:      database.LeadSourceWebsite,
		IPAddress:   attrs.IPAddress,
		UserAgent:   attrs.UserAgent,
		Referrer:    attrs.Referrer,
	}

	if result := i.DB.Sql().Create(&inquiry); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error creating inquiry [%s]: %w", attrs.Email, result.Error)
	}

	return &inquiry, nil
}

func (i Inquiries) FindBy(uuidValue string) *database.Inquiry {
	inquiry := database.Inquiry{}

	result := i.DB.Sql().
		Where("uuid = ?", uuidValue).
		First(&inquiry)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &inquiry
	}

	return nil
}
