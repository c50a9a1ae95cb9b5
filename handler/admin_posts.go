package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/database/repository"
	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

// AdminPostsHandler owns the blog post write path. Authentication happens
// upstream at the deployment edge; these handlers only enforce the content
// rules.
type AdminPostsHandler struct {
	Posts      *repository.Posts
	Categories *repository.Categories
	Tags       *repository.Tags
	Validator  *portal.Validator
}

func MakeAdminPostsHandler(posts *repository.Posts, categories *repository.Categories, tags *repository.Tags) AdminPostsHandler {
	return AdminPostsHandler{
		Posts:      posts,
		Categories: categories,
		Tags:       tags,
		Validator:  portal.GetDefaultValidator(),
	}
}

func (h AdminPostsHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.PostRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid post data", fields)
	}

	attrs, apiErr := h.attrsFrom(request)
	if apiErr != nil {
		return apiErr
	}

	post, err := h.Posts.Create(attrs)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return endpoint.BadRequestError("A post with this slug already exists")
		}

		return endpoint.LogInternalError("Failed to save post", err)
	}

	return endpoint.RespondOk(w, payload.GetPostResponse(h.reload(post)))
}

func (h AdminPostsHandler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	uuidValue := r.PathValue("uuid")

	if h.Posts.FindByUUID(uuidValue) == nil {
		return endpoint.NotFound("Post not found")
	}

	request, err := endpoint.ParseRequestBody[payload.PostRequest](r)
	if err != nil {
		return endpoint.LogInternalError("Internal server error", err)
	}

	if ok, fields := h.Validator.Passes(request); !ok {
		return endpoint.ValidationError("Invalid post data", fields)
	}

	attrs, apiErr := h.attrsFrom(request)
	if apiErr != nil {
		return apiErr
	}

	post, err := h.Posts.Update(uuidValue, attrs)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return endpoint.BadRequestError("A post with this slug already exists")
		}

		return endpoint.LogInternalError("Failed to update post", err)
	}

	return endpoint.RespondOk(w, payload.GetPostResponse(h.reload(post)))
}

func (h AdminPostsHandler) Delete(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	uuidValue := r.PathValue("uuid")

	if h.Posts.FindByUUID(uuidValue) == nil {
		return endpoint.NotFound("Post not found")
	}

	if err := h.Posts.Delete(uuidValue); err != nil {
		return endpoint.LogInternalError("Failed to delete post", err)
	}

	return endpoint.RespondOk(w, payload.SimpleResponse{
		Success: true,
		Message: "Post deleted successfully",
	})
}

func (h AdminPostsHandler) attrsFrom(request payload.PostRequest) (database.PostAttrs, *endpoint.ApiError) {
	attrs := database.PostAttrs{
		Title:         request.Title,
		Content:       request.Content,
		Excerpt:       optional(request.Excerpt),
		FeaturedImage: optional(request.FeaturedImage),
		AuthorName:    request.AuthorName,
		AuthorAvatar:  optional(request.AuthorAvatar),
		Status:        request.Status,
	}

	if request.CategoryUUID != "" {
		category := h.Categories.FindByUUID(request.CategoryUUID)
		if category == nil {
			return attrs, endpoint.BadRequestError(fmt.Sprintf("Unknown category [%s]", request.CategoryUUID))
		}

		attrs.CategoryID = &category.ID
	}

	for _, tagUUID := range request.TagUUIDs {
		tag := h.Tags.FindByUUID(tagUUID)
		if tag == nil {
			return attrs, endpoint.BadRequestError(fmt.Sprintf("Unknown tag [%s]", tagUUID))
		}

		attrs.TagIDs = append(attrs.TagIDs, tag.ID)
	}

	return attrs, nil
}

// reload fetches the post back with its category and tags preloaded so the
// response carries the resolved associations.
func (h AdminPostsHandler) reload(post *database.Post) *database.Post {
	if fresh := h.Posts.FindBy(post.Slug); fresh != nil {
		return fresh
	}

	return post
}
