package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/gorm"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type Tags struct {
	DB *database.Connection
}

func (t Tags) FindBy(slug string) *database.Tag {
	tag := database.Tag{}

	result := t.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&tag)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &tag
	}

	return nil
}

func (t Tags) Create(attrs database.TagAttrs) (*database.Tag, error) {
	tag := database.Tag{
		UUID: uuid.NewString(),
		Name: attrs.Name,
		Slug: portal.Slugify(attrs.Name),
	}

	if result := t.DB.Sql().Create(&tag); gorm.HasDbIssues(result.Error) {
		if gorm.IsDuplicatedKey(result.Error) {
			return nil, ErrDuplicateSlug
		}

		return nil, fmt.Errorf("error creating tag [%s]: %w", attrs.Name, result.Error)
	}

	return &tag, nil
}

func (t Tags) Delete(uuidValue string) error {
	tag := t.FindByUUID(uuidValue)

	if tag == nil {
		return nil
	}

	if result := t.DB.Sql().Where("tag_id = ?", tag.ID).Delete(&database.PostTag{}); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error unlinking tag [%s]: %w", tag.Slug, result.Error)
	}

	if result := t.DB.Sql().Delete(tag); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error deleting tag [%s]: %w", tag.Slug, result.Error)
	}

	return nil
}

func (t Tags) FindByUUID(uuidValue string) *database.Tag {
	tag := database.Tag{}

	result := t.DB.Sql().
		Where("uuid = ?", uuidValue).
		First(&tag)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &tag
	}

	return nil
}
