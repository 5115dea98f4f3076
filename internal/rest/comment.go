package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/internal/rest/response"
)

// CommentHandler represent the http handler for comments and their likes
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Store will store the comment under the thread given in the path
func (h *CommentHandler) Store(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	added, err := h.Service.Create(c.Request.Context(), userID, c.Param("threadId"), payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedComment": response.NewAddedCommentFromDomain(added),
	}))
}

// Delete will soft-delete the comment given in the path
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	path := domain.CommentPath{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	}
	if err := h.Service.Delete(c.Request.Context(), userID, path); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}

// ToggleLike likes the comment, or unlikes it when already liked
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	path := domain.CommentPath{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	}
	if err := h.Service.ToggleLike(c.Request.Context(), userID, path); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
