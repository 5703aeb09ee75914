package delivery

import (
	"net/http"

	authdomain "mesto-backend/internal/auth/domain"
	authdto "mesto-backend/internal/auth/dto"
	"mesto-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler serves the /users routes. All of them require AuthMiddleware.
type UserHandler struct {
	authUsecase usecase.AuthUsecase
	log         logrus.FieldLogger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authUsecase usecase.AuthUsecase, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
		log:         log,
	}
}

// GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.authUsecase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, authdto.UsersResponse{Data: authdomain.PublicUsers(users)})
}

// GET /users/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, authdto.UserResponse{Data: user.Public()})
}

// GET /users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	user, err := h.authUsecase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, authdto.UserResponse{Data: user.Public()})
}

// PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}

	user, err := h.authUsecase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, authdto.UserResponse{Data: user.Public()})
}

// PATCH /users/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	var req authdto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}

	user, err := h.authUsecase.UpdateAvatar(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, authdto.UserResponse{Data: user.Public()})
}
