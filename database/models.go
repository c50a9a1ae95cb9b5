package database

import (
	"time"

	"gorm.io/gorm"
)

// ---- Inquiry lifecycle

const InquiryTypeGeneral = "general"
const InquiryTypeDemo = "demo"

const InquiryStatusNew = "new"
const InquiryPriorityMedium = "medium"

const LeadSourceWebsite = "website"

// ---- Subscription lifecycle

const SubscriberStatusActive = "active"
const SubscriberStatusInactive = "inactive"

// ---- Blog post lifecycle

const PostStatusDraft = "draft"
const PostStatusPublished = "published"
const PostStatusArchived = "archived"

// Inquiry is a contact or demo lead captured by the public forms. Rows are
// immutable after creation; downstream follow-up happens elsewhere.
type Inquiry struct {
	ID          uint64    `gorm:"primaryKey"`
	UUID        string    `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string    `gorm:"size:255;not null"`
	Email       string    `gorm:"size:255;not null;index"`
	Company     string    `gorm:"size:255;not null"`
	Phone       *string   `gorm:"size:64"`
	Subject     string    `gorm:"size:255;not null"`
	Message     string    `gorm:"type:text;not null"`
	InquiryType string    `gorm:"size:32;not null;index"`
	Priority    string    `gorm:"size:32;not null"`
	Status      string    `gorm:"size:32;not null;index"`
	Source      string    `gorm:"size:64;not null"`
	IPAddress   *string   `gorm:"size:64"`
	UserAgent   *string   `gorm:"size:512"`
	Referrer    *string   `gorm:"size:512"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Inquiry) TableName() string {
	return "demo_inquiries"
}

// NewsletterSubscriber holds one row per email, ever. Unsubscribing flips
// the status; a repeat signup reactivates the same row.
type NewsletterSubscriber struct {
	ID           uint64    `gorm:"primaryKey"`
	UUID         string    `gorm:"type:uuid;uniqueIndex;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	Status       string    `gorm:"size:32;not null;index"`
	Source       string    `gorm:"size:64;not null"`
	IPAddress    *string   `gorm:"size:64"`
	UserAgent    *string   `gorm:"size:512"`
	Referrer     *string   `gorm:"size:512"`
	SubscribedAt time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// WaitlistEntry is created once per email. There is no reactivation path:
// duplicates are rejected regardless of the existing row's status.
type WaitlistEntry struct {
	ID              uint64     `gorm:"primaryKey"`
	UUID            string     `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName       string     `gorm:"size:255;not null"`
	LastName        string     `gorm:"size:255;not null"`
	Email           string     `gorm:"size:255;uniqueIndex;not null"`
	Company         string     `gorm:"size:255;not null"`
	Role            string     `gorm:"size:255;not null"`
	InterestedPlan  string     `gorm:"size:64;not null"`
	EstimatedUsers  *string    `gorm:"size:64"`
	AgreedToUpdates bool       `gorm:"not null;default:false"`
	Status          string     `gorm:"size:32;not null"`
	Source          string     `gorm:"size:64;not null"`
	IPAddress       *string    `gorm:"size:64"`
	UserAgent       *string    `gorm:"size:512"`
	Referrer        *string    `gorm:"size:512"`
	NotifiedAt      *time.Time `gorm:""`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist"
}

type Post struct {
	ID            uint64         `gorm:"primaryKey"`
	UUID          string         `gorm:"type:uuid;uniqueIndex;not null"`
	Title         string         `gorm:"size:255;not null"`
	Slug          string         `gorm:"size:255;uniqueIndex;not null"`
	Excerpt       *string        `gorm:"type:text"`
	Content       string         `gorm:"type:text;not null"`
	FeaturedImage *string        `gorm:"size:512"`
	AuthorName    string         `gorm:"size:255;not null"`
	AuthorAvatar  *string        `gorm:"size:512"`
	CategoryID    *uint64        `gorm:"index"`
	Category      *Category      `gorm:"foreignKey:CategoryID"`
	Status        string         `gorm:"size:32;not null;index"`
	PublishedAt   *time.Time     `gorm:"index"`
	ReadingTime   int            `gorm:"not null;default:0"`
	Views         int            `gorm:"not null;default:0"`
	Tags          []Tag          `gorm:"many2many:blog_post_tags;joinForeignKey:PostID;joinReferences:TagID"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Post) TableName() string {
	return "blog_posts"
}

type Category struct {
	ID          uint64    `gorm:"primaryKey"`
	UUID        string    `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string    `gorm:"size:255;not null"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "blog_categories"
}

type Tag struct {
	ID        uint64    `gorm:"primaryKey"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `gorm:"size:255;not null"`
	Slug      string    `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Tag) TableName() string {
	return "blog_tags"
}

// PostTag is the explicit join row between posts and tags. The store does
// not cascade on post deletion; the repository removes these itself.
type PostTag struct {
	PostID uint64 `gorm:"primaryKey"`
	TagID  uint64 `gorm:"primaryKey"`
}

func (PostTag) TableName() string {
	return "blog_post_tags"
}
