package database

import "time"

// InquiryAttrs carries a validated, normalised lead into the inquiries
// repository. Metadata pointers stay nil when the request had nothing
// trustworthy to record.
type InquiryAttrs struct {
	Name        string
	Email       string
	Company     string
	Phone       *string
	Subject     string
	Message     string
	InquiryType string
	IPAddress   *string
	UserAgent   *string
	Referrer    *string
}

type SubscriberAttrs struct {
	Email     string
	IPAddress *string
	UserAgent *string
	Referrer  *string
}

type WaitlistAttrs struct {
	FirstName       string
	LastName        string
	Email           string
	Company         string
	Role            string
	InterestedPlan  string
	EstimatedUsers  *string
	AgreedToUpdates bool
	IPAddress       *string
	UserAgent       *string
	Referrer        *string
}

type PostAttrs struct {
	Title         string
	Content       string
	Excerpt       *string
	FeaturedImage *string
	AuthorName    string
	AuthorAvatar  *string
	CategoryID    *uint64
	Status        string
	TagIDs        []uint64
}

type CategoryAttrs struct {
	Name        string
	Description *string
}

type TagAttrs struct {
	Name string
}

// PublishedAtFor resolves the timestamp rule for a post transitioning
// between statuses: stamp now on the first transition into published,
// keep the existing stamp otherwise.
func PublishedAtFor(current *Post, next string, now time.Time) *time.Time {
	if next != PostStatusPublished {
		if current == nil {
			return nil
		}

		return current.PublishedAt
	}

	if current != nil && current.Status == PostStatusPublished && current.PublishedAt != nil {
		return current.PublishedAt
	}

	return &now
}
