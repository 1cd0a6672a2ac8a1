package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPingHandler(t *testing.T) {
	tests := []struct {
		name            string
		version         string
		expectedVersion string
	}{
		{name: "configured version", version: "1.2.3", expectedVersion: "1.2.3"},
		{name: "no version", expectedVersion: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

			require.NoError(t, NewPingHandler("absensi-mockapi", tt.version)(c))

			var info BuildInfo
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "absensi-mockapi", info.ServiceName)
			assert.Equal(t, tt.expectedVersion, info.Version)
			assert.Equal(t, runtime.Version(), info.GoVersion)
			assert.False(t, info.ServerTime.IsZero())
		})
	}
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "absensi-mockapi", "1.0.0")

	for _, path := range []string{"/ping", "/health", "/ready"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestNewReadyHandler(t *testing.T) {
	healthy := Check{Name: "store", Probe: func(context.Context) error { return nil }}
	broken := Check{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }}

	tests := []struct {
		name           string
		checks         []Check
		expectedStatus int
		expectedFailed map[string]string
	}{
		{name: "no checks", expectedStatus: http.StatusOK},
		{name: "all healthy", checks: []Check{healthy}, expectedStatus: http.StatusOK},
		{
			name:           "one failing",
			checks:         []Check{healthy, broken},
			expectedStatus: http.StatusServiceUnavailable,
			expectedFailed: map[string]string{"redis": "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ready", nil), rec)

			require.NoError(t, NewReadyHandler(tt.checks...)(c))

			var resp Readiness
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedFailed, resp.Failed)
		})
	}
}
