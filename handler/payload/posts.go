package payload

import (
	"time"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
)

type PostRequest struct {
	Title         string   `json:"title" validate:"required,min=2"`
	Excerpt       string   `json:"excerpt" validate:"omitempty"`
	Content       string   `json:"content" validate:"required,min=10"`
	FeaturedImage string   `json:"featuredImage" validate:"omitempty,url"`
	AuthorName    string   `json:"authorName" validate:"required,min=2"`
	AuthorAvatar  string   `json:"authorAvatar" validate:"omitempty,url"`
	CategoryUUID  string   `json:"categoryId" validate:"omitempty,uuid"`
	TagUUIDs      []string `json:"tagIds" validate:"omitempty,dive,uuid"`
	Status        string   `json:"status" validate:"required,oneof=draft published archived"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"omitempty"`
}

type TagRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type PostResponse struct {
	UUID          string            `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Excerpt       string            `json:"excerpt"`
	Content       string            `json:"content"`
	FeaturedImage string            `json:"featuredImage,omitempty"`
	AuthorName    string            `json:"authorName"`
	AuthorAvatar  string            `json:"authorAvatar,omitempty"`
	Category      *CategoryResponse `json:"category,omitempty"`
	Tags          []TagResponse     `json:"tags"`
	Status        string            `json:"status"`
	PublishedAt   *time.Time        `json:"publishedAt,omitempty"`
	ReadingTime   int               `json:"readingTime"`
	Views         int               `json:"views"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type CategoryResponse struct {
	UUID        string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type TagResponse struct {
	UUID string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PostsCollection struct {
	Data []PostResponse `json:"data"`
}

func GetPostResponse(post *database.Post) PostResponse {
	response := PostResponse{
		UUID:          post.UUID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       fromPtr(post.Excerpt),
		Content:       post.Content,
		FeaturedImage: fromPtr(post.FeaturedImage),
		AuthorName:    post.AuthorName,
		AuthorAvatar:  fromPtr(post.AuthorAvatar),
		Tags:          []TagResponse{},
		Status:        post.Status,
		PublishedAt:   post.PublishedAt,
		ReadingTime:   post.ReadingTime,
		Views:         post.Views,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}

	if post.Category != nil {
		category := GetCategoryResponse(post.Category)
		response.Category = &category
	}

	for _, tag := range post.Tags {
		response.Tags = append(response.Tags, GetTagResponse(&tag))
	}

	return response
}

func GetCategoryResponse(category *database.Category) CategoryResponse {
	return CategoryResponse{
		UUID:        category.UUID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: fromPtr(category.Description),
	}
}

func fromPtr(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func GetTagResponse(tag *database.Tag) TagResponse {
	return TagResponse{
		UUID: tag.UUID,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}
