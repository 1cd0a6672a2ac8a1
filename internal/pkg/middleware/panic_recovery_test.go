package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T) (*logger.ZapLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "debug", Console: &buf})
	require.NoError(t, err)
	return zl, &buf
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		setupContext func(c echo.Context)
		expectInLogs []string
	}{
		{
			name:         "string panic",
			panicValue:   "test panic message",
			expectInLogs: []string{"test panic message", "stack_trace", "Panic recovered during request processing"},
		},
		{
			name:         "error panic",
			panicValue:   errors.New("test error panic"),
			expectInLogs: []string{"test error panic", "*errors.errorString"},
		},
		{
			name:         "panic with user context",
			panicValue:   "user context panic",
			setupContext: func(c echo.Context) { c.Set(ContextUserID, int64(42)) },
			expectInLogs: []string{`"user_id":"42"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, buf := newBufferedLogger(t)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-1")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.setupContext != nil {
				tt.setupContext(c)
			}

			handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			err := handler(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)

			logs := buf.String()
			assert.Contains(t, logs, "req-1")
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logs, expected)
			}
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	zl, buf := newBufferedLogger(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, buf.String(), "Panic recovered")
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(DefaultPanicRecoveryConfig())
	})
}
