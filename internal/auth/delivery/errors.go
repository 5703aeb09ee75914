package delivery

import (
	"errors"
	"fmt"
	"net/http"

	authdomain "mesto-backend/internal/auth/domain"
	authdto "mesto-backend/internal/auth/dto"
	"mesto-backend/internal/auth/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const internalErrorMessage = "internal server error"

// statusFor maps an error kind to its HTTP status. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, authdomain.ErrValidation), errors.Is(err, authdomain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrUnauthorized),
		errors.Is(err, token.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, authdomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, authdomain.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for err. Internal errors are logged
// and replaced by a generic message.
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	status := statusFor(err)
	message := err.Error()

	switch status {
	case http.StatusInternalServerError:
		_ = c.Error(err)
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
		message = internalErrorMessage
	case http.StatusUnauthorized:
		if !errors.Is(err, authdomain.ErrInvalidCredentials) {
			message = authdomain.ErrUnauthorized.Error()
		}
	}

	c.AbortWithStatusJSON(status, authdto.ErrorResponse{Error: message})
}

// bindingError marks a request body that failed to decode or bind.
func bindingError(err error) error {
	return fmt.Errorf("%w: %v", authdomain.ErrValidation, err)
}
