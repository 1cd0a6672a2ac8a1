package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmpt/absensi/internal/pkg/health"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/metrics"
	"github.com/dmpt/absensi/internal/pkg/middleware"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// ServiceName identifies the mock backend in logs and health responses
const ServiceName = "absensi-mockapi"

const metricsNamespace = "absensi_mockapi"

// Login attempts allowed per client IP and window when Redis is available
const (
	loginRateLimit  = 10
	loginRatePeriod = time.Minute
)

// New builds the seeded mock backend. redisClient is optional and enables login rate limiting.
func New(cfg *models.Config, zapLogger *logger.ZapLogger, redisClient *redis.Client) (*echo.Echo, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	store := NewStore()
	if err := Seed(store, cfg.MockAPI); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	m := metrics.New(metricsNamespace)
	e.Use(m.Middleware())
	m.Register(e)

	var (
		loginLimiter echo.MiddlewareFunc
		checks       []health.Check
	)
	if redisClient != nil {
		loginLimiter = middleware.IPRateLimiter(loginRateLimit, loginRatePeriod, redisClient)
		checks = append(checks, health.Check{
			Name:  "redis",
			Probe: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}
	health.RegisterHealthEndpoints(e, ServiceName, cfg.App.Version, checks...)

	handler := NewHandler(store, cfg.JWT, utils.NewGeofence(cfg.Office))
	handler.metrics = m
	handler.RegisterRoutes(e, loginLimiter)

	return e, nil
}

// errorHandler writes echo's own errors, such as unknown routes, as {message}
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if err := utils.ErrorResponseHandler(c, code, message); err != nil {
		logger.Warn("Failed to write error response", logger.Err(err))
	}
}
