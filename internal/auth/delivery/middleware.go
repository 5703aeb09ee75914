package delivery

import (
	"net/http"

	authdomain "mesto-backend/internal/auth/domain"
	authdto "mesto-backend/internal/auth/dto"
	"mesto-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TokenCookie holds the session token.
const TokenCookie = "token"

// AuthMiddleware admits requests carrying a valid session cookie. Missing and
// invalid tokens get the same 401 so clients cannot tell expired from forged.
func AuthMiddleware(authUsecase usecase.AuthUsecase, observer Observer, log logrus.FieldLogger) gin.HandlerFunc {
	if observer == nil {
		observer = noopObserver{}
	}

	reject := func(c *gin.Context) {
		observer.ObserveAuthReject()
		c.AbortWithStatusJSON(http.StatusUnauthorized, authdto.ErrorResponse{Error: authdomain.ErrUnauthorized.Error()})
	}

	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			reject(c)
			return
		}

		userID, err := authUsecase.ValidateToken(tokenString)
		if err != nil {
			log.WithError(err).Debug("session token rejected")
			reject(c)
			return
		}

		c.Set(userIDKey, userID)
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}
