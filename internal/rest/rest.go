package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/internal/rest/response"
)

const serverErrorMessage = "terjadi kegagalan pada server kami"

// writeError translates a use-case error into the uniform response body.
// Validation errors answer with their localized message; unexpected errors
// are logged and collapse into a generic 500.
func writeError(c *gin.Context, err error) {
	var validationErr domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, response.Fail(validationErr.Message()))
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Fail(err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, response.Fail(domain.ErrForbidden.Error()))
	case errors.Is(err, domain.ErrAuthentication):
		c.JSON(http.StatusUnauthorized, response.Fail(domain.ErrAuthentication.Error()))
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusBadRequest, response.Fail("username tidak tersedia"))
	case errors.Is(err, domain.ErrBadParamInput):
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
	default:
		logrus.Error(err)
		c.JSON(http.StatusInternalServerError, response.Error(serverErrorMessage))
	}
}

// authenticatedUser reads the user id the auth middleware stored on the
// request. A missing id means the route was registered without the
// middleware, answered as unauthorized rather than panicking.
func authenticatedUser(c *gin.Context) (string, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
		return "", false
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
		return "", false
	}
	return userID, true
}

// bindPayload decodes the request body into the dynamic payload the entity
// constructors validate. An empty body is allowed; the constructors report
// the missing properties with their own messages.
func bindPayload(c *gin.Context) (domain.Payload, bool) {
	payload := domain.Payload{}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return payload, true
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return nil, false
	}
	return payload, true
}
