package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/gorm"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type Posts struct {
	DB *database.Connection
}

// Create derives the slug and reading time from the submitted title and
// content, and stamps published_at only when the post is born published.
func (p Posts) Create(attrs database.PostAttrs) (*database.Post, error) {
	now := time.Now().UTC()

	post := database.Post{
		UUID:          uuid.NewString(),
		Title:         attrs.Title,
		Slug:          portal.Slugify(attrs.Title),
		Excerpt:       attrs.Excerpt,
		Content:       attrs.Content,
		FeaturedImage: attrs.FeaturedImage,
		AuthorName:    attrs.AuthorName,
		AuthorAvatar:  attrs.AuthorAvatar,
		CategoryID:    attrs.CategoryID,
		Status:        attrs.Status,
		PublishedAt:   database.PublishedAtFor(nil, attrs.Status, now),
		ReadingTime:   portal.ReadingTime(attrs.Content),
	}

	if result := p.DB.Sql().Create(&post); gorm.HasDbIssues(result.Error) {
		if gorm.IsDuplicatedKey(result.Error) {
			return nil, ErrDuplicateSlug
		}

		return nil, fmt.Errorf("error creating post [%s]: %w", post.Slug, result.Error)
	}

	if err := p.linkTags(post.ID, attrs.TagIDs); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update recomputes slug and reading time from the submitted fields and
// replaces the tag link set. published_at is stamped exactly once, on the
// transition into published; later edits leave it untouched.
func (p Posts) Update(uuidValue string, attrs database.PostAttrs) (*database.Post, error) {
	post := p.FindByUUID(uuidValue)

	if post == nil {
		return nil, fmt.Errorf("post [%s] not found", uuidValue)
	}

	now := time.Now().UTC()

	post.PublishedAt = database.PublishedAtFor(post, attrs.Status, now)
	post.Title = attrs.Title
	post.Slug = portal.Slugify(attrs.Title)
	post.Excerpt = attrs.Excerpt
	post.Content = attrs.Content
	post.FeaturedImage = attrs.FeaturedImage
	post.AuthorName = attrs.AuthorName
	post.AuthorAvatar = attrs.AuthorAvatar
	post.CategoryID = attrs.CategoryID
	post.Status = attrs.Status
	post.ReadingTime = portal.ReadingTime(attrs.Content)

	if result := p.DB.Sql().Save(post); gorm.HasDbIssues(result.Error) {
		if gorm.IsDuplicatedKey(result.Error) {
			return nil, ErrDuplicateSlug
		}

		return nil, fmt.Errorf("error updating post [%s]: %w", post.Slug, result.Error)
	}

	if err := p.relinkTags(post.ID, attrs.TagIDs); err != nil {
		return nil, err
	}

	return post, nil
}

// Delete removes the post and its tag links. The store does not cascade;
// the links go first.
func (p Posts) Delete(uuidValue string) error {
	post := p.FindByUUID(uuidValue)

	if post == nil {
		return fmt.Errorf("post [%s] not found", uuidValue)
	}

	if result := p.DB.Sql().Where("post_id = ?", post.ID).Delete(&database.PostTag{}); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error removing tag links for post [%s]: %w", post.Slug, result.Error)
	}

	if result := p.DB.Sql().Unscoped().Delete(post); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error deleting post [%s]: %w", post.Slug, result.Error)
	}

	return nil
}

func (p Posts) FindBy(slug string) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Preload("Category").
		Preload("Tags").
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &post
	}

	return nil
}

func (p Posts) FindByUUID(uuidValue string) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Where("uuid = ?", uuidValue).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &post
	}

	return nil
}

// GetPublished lists published posts for the public blog, newest first.
func (p Posts) GetPublished() ([]database.Post, error) {
	var posts []database.Post

	err := p.DB.Sql().
		Preload("Category").
		Preload("Tags").
		Where("status = ?", database.PostStatusPublished).
		Order("published_at desc").
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("error listing published posts: %w", err)
	}

	return posts, nil
}

func (p Posts) linkTags(postID uint64, tagIDs []uint64) error {
	for _, tagID := range tagIDs {
		trace := database.PostTag{
			PostID: postID,
			TagID:  tagID,
		}

		if result := p.DB.Sql().Create(&trace); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("error linking tag [%d] to post [%d]: %w", tagID, postID, result.Error)
		}
	}

	return nil
}

func (p Posts) relinkTags(postID uint64, tagIDs []uint64) error {
	if result := p.DB.Sql().Where("post_id = ?", postID).Delete(&database.PostTag{}); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error unlinking tags for post [%d]: %w", postID, result.Error)
	}

	return p.linkTags(postID, tagIDs)
}
