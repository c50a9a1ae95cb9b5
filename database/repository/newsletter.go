package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/gorm"
)

type Newsletter struct {
	DB *database.Connection
}

func (n Newsletter) FindByEmail(email string) *database.NewsletterSubscriber {
	subscriber := database.NewsletterSubscriber{}

	result := n.DB.Sql().
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&subscriber)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &subscriber
	}

	return nil
}

// Subscribe creates a subscription, reactivates an inactive one, or fails
// with ErrAlreadySubscribed when the email is already active. The
// check-then-act here is not transactional; a unique-key breach at insert
// time is folded into the same conflict.
func (n Newsletter) Subscribe(attrs database.SubscriberAttrs) (*database.NewsletterSubscriber, error) {
	existing := n.FindByEmail(attrs.Email)

	if existing != nil {
		if existing.Status == database.SubscriberStatusActive {
			return nil, ErrAlreadySubscribed
		}

		return n.reactivate(existing)
	}

	subscriber := database.NewsletterSubscriber{
		UUID:         uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(attrs.Email)),
		Status:       database.SubscriberStatusActive,
		Source:       database.LeadSourceWebsite,
		IPAddress:    attrs.IPAddress,
		UserAgent:    attrs.UserAgent,
		Referrer:     attrs.Referrer,
		SubscribedAt: time.Now().UTC(),
	}

	if result := n.DB.Sql().Create(&subscriber); gorm.HasDbIssues(result.Error) {
		if gorm.IsDuplicatedKey(result.Error) {
			return nil, ErrAlreadySubscribed
		}

		return nil, fmt.Errorf("error creating newsletter subscriber [%s]: %w", attrs.Email, result.Error)
	}

	return &subscriber, nil
}

func (n Newsletter) reactivate(subscriber *database.NewsletterSubscriber) (*database.NewsletterSubscriber, error) {
	subscriber.Status = database.SubscriberStatusActive
	subscriber.SubscribedAt = time.Now().UTC()

	if result := n.DB.Sql().Save(subscriber); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error reactivating newsletter subscriber [%s]: %w", subscriber.Email, result.Error)
	}

	return subscriber, nil
}

func (n Newsletter) Unsubscribe(email string) error {
	subscriber := n.FindByEmail(email)

	if subscriber == nil {
		return nil
	}

	subscriber.Status = database.SubscriberStatusInactive

	if result := n.DB.Sql().Save(subscriber); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error unsubscribing [%s]: %w", email, result.Error)
	}

	return nil
}
