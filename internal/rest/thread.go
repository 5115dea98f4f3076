package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/internal/rest/response"
)

// ThreadHandler represent the http handler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will store the thread by given request body
func (h *ThreadHandler) Store(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	added, err := h.Service.Create(c.Request.Context(), userID, payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(added),
	}))
}

// GetDetail will get the full nested thread view by given param
func (h *ThreadHandler) GetDetail(c *gin.Context) {
	thread, err := h.Service.GetDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"thread": thread,
	}))
}
