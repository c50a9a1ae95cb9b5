package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/gorm"
)

type Waitlist struct {
	DB *database.Connection
}

func (w Waitlist) FindByEmail(email string) *database.WaitlistEntry {
	entry := database.WaitlistEntry{}

	result := w.DB.Sql().
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&entry)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &entry
	}

	return nil
}

// Join creates a waitlist entry or fails with ErrAlreadyRegistered. Unlike
// the newsletter, there is no reactivation: one row per email, ever.
func (w Waitlist) Join(attrs database.WaitlistAttrs) (*database.WaitlistEntry, error) {
	if existing := w.FindByEmail(attrs.Email); existing != nil {
		return nil, ErrAlreadyRegistered
	}

	entry := database.WaitlistEntry{
		UUID:            uuid.NewString(),
		FirstName:       attrs.FirstName,
		LastName:        attrs.LastName,
		Email:           strings.ToLower(strings.TrimSpace(attrs.Email)),
		Company:         attrs.Company,
		Role:            attrs.Role,
		InterestedPlan:  attrs.InterestedPlan,
		EstimatedUsers:  attrs.EstimatedUsers,
		AgreedToUpdates: attrs.AgreedToUpdates,
		Status:          database.SubscriberStatusActive,
		Source:          database.LeadSourceWebsite,
		IPAddress:       attrs.IPAddress,
		UserAgent:       attrs.UserAgent,
		Referrer:        attrs.Referrer,
	}

	if result := w.DB.Sql().Create(&entry); gorm.HasDbIssues(result.Error) {
		if gorm.IsDuplicatedKey(result.Error) {
			return nil, ErrAlreadyRegistered
		}

		return nil, fmt.Errorf("error creating waitlist entry [%s]: %w", attrs.Email, result.Error)
	}

	return &entry, nil
}

// MarkNotified stamps the welcome-email timestamp after a successful send.
func (w Waitlist) MarkNotified(entry *database.WaitlistEntry) error {
	now := time.Now().UTC()
	entry.NotifiedAt = &now

	if result := w.DB.Sql().Save(entry); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error marking waitlist entry [%s] notified: %w", entry.Email, result.Error)
	}

	return nil
}
