package handler

import (
	"net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/database/repository"
	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
)

type PostsHandler struct {
	Posts *repository.Posts
}

func MakePostsHandler(posts *repository.Posts) PostsHandler {
	return PostsHandler{Posts: posts}
}

// Index lists published posts, newest first.
func (h PostsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	posts, err := h.Posts.GetPublished()
	if err != nil {
		return endpoint.LogInternalError("Failed to load posts", err)
	}

	collection := payload.PostsCollection{Data: []payload.PostResponse{}}
	for index := range posts {
		collection.Data = append(collection.Data, payload.GetPostResponse(&posts[index]))
	}

	return endpoint.RespondOk(w, collection)
}

// Show resolves one post by slug. Drafts and archived posts stay hidden.
func (h PostsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	slug := r.PathValue("slug")

	if slug == "" {
		return endpoint.BadRequestError("Post slug is required")
	}

	post := h.Posts.FindBy(slug)
	if post == nil || post.Status != database.PostStatusPublished {
		return endpoint.NotFound("Post not found")
	}

	return endpoint.RespondOk(w, payload.GetPostResponse(post))
}
