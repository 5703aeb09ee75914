package api

import (
	"net/http"

	"mesto-backend/internal/auth/delivery"
	authUsecase "mesto-backend/internal/auth/usecase"
	authdto "mesto-backend/internal/auth/dto"
	"mesto-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, m *metrics.Metrics, log logrus.FieldLogger) {
	authHandler := delivery.NewAuthHandler(authUsecase, m, log)
	userHandler := delivery.NewUserHandler(authUsecase, log)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// Auth routes
	r.POST("/signup", authHandler.Signup)
	r.POST("/signin", authHandler.Signin)
	r.DELETE("/signout", authHandler.Signout)

	// User routes (protected)
	users := r.Group("/users")
	users.Use(delivery.AuthMiddleware(authUsecase, m, log))
	{
		users.GET("", userHandler.GetUsers)
		users.GET("/me", userHandler.GetCurrentUser)
		users.GET("/:id", userHandler.GetUserByID)
		users.PATCH("/me", userHandler.UpdateProfile)
		users.PATCH("/me/avatar", userHandler.UpdateAvatar)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, authdto.ErrorResponse{Error: "page not found"})
	})
}
