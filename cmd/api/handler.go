package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	authUsecase "mesto-backend/internal/auth/usecase"
	"mesto-backend/pkg/config"
	"mesto-backend/pkg/logger"
	"mesto-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	config      *config.Config
	log         *logrus.Logger
	metrics     *metrics.Metrics
}

func NewHandler(authUc authUsecase.AuthUsecase, cfg *config.Config, log *logrus.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		authUsecase: authUc,
		config:      cfg,
		log:         log,
		metrics:     m,
	}
}

// Engine builds the gin engine with global middleware and all routes.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()

	r.Use(
		Recovery(h.log),
		logger.RequestLogger(h.log),
		h.metrics.Middleware(),
		SecurityHeaders(),
		CORS(h.config.CORSOrigins),
	)

	SetupRoutes(r, h.authUsecase, h.metrics, h.log)

	return r
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      h.Engine(),
		ReadTimeout:  h.config.HTTPReadTimeout,
		WriteTimeout: h.config.HTTPWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		h.log.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
