package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/internal/rest/response"
)

// ReplyHandler represent the http handler for replies
type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

// Store will store the reply under the comment given in the path
func (h *ReplyHandler) Store(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	path := domain.CommentPath{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	}
	added, err := h.Service.Create(c.Request.Context(), userID, path, payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedReply": response.NewAddedReplyFromDomain(added),
	}))
}

// Delete will soft-delete the reply given in the path
func (h *ReplyHandler) Delete(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	path := domain.ReplyPath{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
		ReplyID:   c.Param("replyId"),
	}
	if err := h.Service.Delete(c.Request.Context(), userID, path); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
