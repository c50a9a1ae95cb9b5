package handler

import (
	"errors"
	"net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/database/repository"
	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type TaxonomyHandler struct {
	Categories *repository.Categories
	Tags       *repository.Tags
	Validator  *portal.Validator
}

func MakeTaxonomyHandler(categories *repository.Categories, tags *repository.Tags) TaxonomyHandler {
	return TaxonomyHandler{
		Categories: categories,
		Tags:       tags,
		Validator:  portal.GetDefaultValidator(),
	}
}

// IndexCategories backs the public category listing used by the blog's
// navigation.
func (h TaxonomyHandler) IndexCategories(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	categories, err := h.Categories.GetAll()
	if err != nil {
		return endpoint.LogInternalError("Failed to load categories", err)
	}

	data := []payload.CategoryResponse{}
	for index := range categories {
		data = append(data, payload.GetCategoryResponse(&categories[index]))
	}

	return endpoint.RespondOk(w, map[string]any{"data": data})
}

func (h TaxonomyHandler) StoreCategory(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.CategoryRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid category data", fields)
	}

	category, err := h.Categories.Create(database.CategoryAttrs{
		Name:        request.Name,
		Description: optional(request.Description),
	})

	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return endpoint.BadRequestError("A category with this slug already exists")
		}

		return endpoint.LogInternalError("Failed to save category", err)
	}

	return endpoint.RespondOk(w, payload.GetCategoryResponse(category))
}

func (h TaxonomyHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	uuidValue := r.PathValue("uuid")

	if h.Categories.FindByUUID(uuidValue) == nil {
		return endpoint.NotFound("Category not found")
	}

	if err := h.Categories.Delete(uuidValue); err != nil {
		return endpoint.LogInternalError("Failed to delete category", err)
	}

	return endpoint.RespondOk(w, payload.SimpleResponse{
		Success: true,
		Message: "Category deleted successfully",
	})
}

func (h TaxonomyHandler) StoreTag(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.TagRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid tag data", fields)
	}

	tag, err := h.Tags.Create(database.TagAttrs{Name: request.Name})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return endpoint.BadRequestError("A tag with this slug already exists")
		}

		return endpoint.LogInternalError("Failed to save tag", err)
	}

	return endpoint.RespondOk(w, payload.GetTagResponse(tag))
}

func (h TaxonomyHandler) DeleteTag(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	uuidValue := r.PathValue("uuid")

	if h.Tags.FindByUUID(uuidValue) == nil {
		return endpoint.NotFound("Tag not found")
	}

	if err := h.Tags.Delete(uuidValue); err != nil {
		return endpoint.LogInternalError("Failed to delete tag", err)
	}

	return endpoint.RespondOk(w, payload.SimpleResponse{
		Success: true,
		Message: "Tag deleted successfully",
	})
}
