package delivery

import (
	"errors"
	"net/http"

	authdomain "mesto-backend/internal/auth/domain"
	authdto "mesto-backend/internal/auth/dto"
	"mesto-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler serves signup, signin and signout. None of them sit behind the
// auth middleware.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	observer    Observer
	log         logrus.FieldLogger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, observer Observer, log logrus.FieldLogger) *AuthHandler {
	if observer == nil {
		observer = noopObserver{}
	}
	return &AuthHandler{
		authUsecase: authUsecase,
		observer:    observer,
		log:         log,
	}
}

// Signup registers a user
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, authdto.UserResponse{Data: user.Public()})
}

// Signin checks credentials and sets the session cookie
// POST /signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req authdto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}

	tokenString, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrInvalidCredentials):
			h.observer.ObserveSignin("rejected")
		case !errors.Is(err, authdomain.ErrValidation):
			h.observer.ObserveSignin("error")
		}
		respondError(c, h.log, err)
		return
	}

	h.observer.ObserveSignin("success")
	setTokenCookie(c, tokenString, int(h.authUsecase.TokenTTL().Seconds()))
	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "signed in"})
}

// Signout clears the session cookie. The token itself stays valid until it
// expires; the server keeps no revocation list.
// DELETE /signout
func (h *AuthHandler) Signout(c *gin.Context) {
	setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "signed out"})
}

func setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(TokenCookie, value, maxAge, "/", "", true, true)
}
