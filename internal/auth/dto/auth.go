package dto

import authdomain "mesto-backend/internal/auth/domain"

type SignupRequest struct {
	Name     string `json:"name"`
	About    string `json:"about"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	About string `json:"about" binding:"required"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// UserResponse wraps a single public user.
type UserResponse struct {
	Data authdomain.PublicUser `json:"data"`
}

// UsersResponse wraps a list of public users.
type UsersResponse struct {
	Data []authdomain.PublicUser `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
