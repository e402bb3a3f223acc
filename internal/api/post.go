package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexusgo/foodtracker/backend/internal/security"
	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

// PostHandler serves the community feed.
type PostHandler struct {
	posts     service.IPostService
	sanitizer security.ContentSanitizer
}

func NewPostHandler(posts service.IPostService, sanitizer security.ContentSanitizer) *PostHandler {
	return &PostHandler{posts: posts, sanitizer: sanitizer}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost stores the post with all markup stripped.
func (h *PostHandler) CreatePost(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	content := h.sanitizer.Sanitize(req.Content)
	if content == "" {
		abortWithError(c, http.StatusBadRequest, "content is empty after sanitizing")
		return
	}

	post, err := h.posts.AddPost(c.Request.Context(), accountID, content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.posts.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if post == nil {
		respondError(c, service.ErrNotFound)
		return
	}
	if post.AccountID != accountID {
		abortWithError(c, http.StatusForbidden, "post belongs to another account")
		return
	}

	if err := h.posts.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
