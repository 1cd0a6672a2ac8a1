package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

const checkTimeout = 2 * time.Second

// BuildInfo is the /ping payload
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Check is a named dependency probe run by /ready
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// Readiness is the /ready payload. Failed maps a check name to its error.
type Readiness struct {
	Status string            `json:"status"`
	Failed map[string]string `json:"failed,omitempty"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}

	buildInfo := BuildInfo{
		Version:     version,
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// NewReadyHandler runs every check and answers 503 when any of them fails
func NewReadyHandler(checks ...Check) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
		defer cancel()

		resp := Readiness{Status: "ready"}
		for _, check := range checks {
			if err := check.Probe(ctx); err != nil {
				if resp.Failed == nil {
					resp.Failed = make(map[string]string)
				}
				resp.Failed[check.Name] = err.Error()
			}
		}

		if len(resp.Failed) > 0 {
			resp.Status = "not ready"
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// RegisterHealthEndpoints registers /ping, /health and /ready
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, checks ...Check) {
	e.GET("/ping", NewPingHandler(serviceName, version))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/ready", NewReadyHandler(checks...))
}
