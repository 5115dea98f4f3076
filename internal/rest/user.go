package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/internal/rest/response"
)

// UserHandler represent the http handler for accounts and sessions
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register will store a new account by given request body
func (h *UserHandler) Register(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	added, err := h.Service.Register(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedUser": response.NewAddedUserFromDomain(added),
	}))
}

// Login verifies the credential and opens a session
func (h *UserHandler) Login(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	pair, err := h.Service.Login(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewTokenPairFromDomain(pair)))
}

// Refresh rotates the access token for a live refresh token
func (h *UserHandler) Refresh(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	accessToken, err := h.Service.Refresh(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"accessToken": accessToken,
	}))
}

// Logout revokes the refresh token
func (h *UserHandler) Logout(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	if err := h.Service.Logout(c.Request.Context(), payload); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
