package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/gorm"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type Categories struct {
	DB *database.Connection
}

func (c Categories) GetAll() ([]database.Category, error) {
	var categories []database.Category

	err := c.DB.Sql().
		Order("blog_categories.name asc").
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	return categories, nil
}

func (c Categories) FindBy(slug string) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&category)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &category
	}

	return nil
}

func (c Categories) FindByUUID(uuidValue string) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Where("uuid = ?", uuidValue).
		First(&category)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &category
	}

	return nil
}

func (c Categories) Create(attrs database.CategoryAttrs) (*database.Category, error) {
	category := database.Category{
		UUID:        uuid.NewString(),
		Name:        attrs.Name,
		Slug:        portal.Slugify(attrs.Name),
		Description: attrs.Description,
	}

	if result := c.DB.Sql().Create(&category); gorm.HasDbIssues(result.Error) {
		if gorm.IsDuplicatedKey(result.Error) {
			return nil, ErrDuplicateSlug
		}

		return nil, fmt.Errorf("error creating category [%s]: %w", attrs.Name, result.Error)
	}

	return &category, nil
}

func (c Categories) Delete(uuidValue string) error {
	result := c.DB.Sql().
		Where("uuid = ?", uuidValue).
		Delete(&database.Category{})

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error deleting category [%s]: %w", uuidValue, result.Error)
	}

	return nil
}
