package server

import (
	"net/http/httptest"
	"testing"

	"github.com/flagwise/flagwise/pkg/config"
	handlers "github.com/flagwise/flagwise/pkg/handlers/http"
	infraPrometheus "github.com/flagwise/flagwise/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	status int
	err    error
}

func (h stubHandler) Handle(c *fiber.Ctx) error {
	if h.err != nil {
		return h.err
	}
	return c.Status(h.status).JSON(fiber.Map{"ok": true})
}

func newTestModerationServer(transport handlers.HandlerTransport) *ModerationServer {
	s := NewModerationServer(ModerationServerDI{
		HandlerTransport: transport,
		Config:           &config.Config{},
		Logger:           logrus.New(),
	})
	s.setupRoutes()
	return s
}

func requestCount(endpoint, status string) float64 {
	return testutil.ToFloat64(infraPrometheus.RequestTotal.WithLabelValues(endpoint, status))
}

func TestModerationServer_CountsSuccessfulRequests(t *testing.T) {
	s := newTestModerationServer(handlers.HandlerTransport{
		ModerateHandler:     stubHandler{status: fiber.StatusOK},
		TestModerateHandler: stubHandler{status: fiber.StatusOK},
		GetVersionHandler:   stubHandler{status: fiber.StatusOK},
	})

	before := requestCount("/version", "200")

	resp, err := s.router.Test(httptest.NewRequest("GET", "/version", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, before+1, requestCount("/version", "200"))
}

func TestModerationServer_CountsErrorStatuses(t *testing.T) {
	s := newTestModerationServer(handlers.HandlerTransport{
		ModerateHandler:     stubHandler{err: fiber.ErrUnauthorized},
		TestModerateHandler: stubHandler{err: assert.AnError},
		GetVersionHandler:   stubHandler{status: fiber.StatusOK},
	})

	beforeUnauthorized := requestCount("/moderate", "401")
	beforeInternal := requestCount("/test/moderate", "500")

	resp, err := s.router.Test(httptest.NewRequest("POST", "/moderate", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = s.router.Test(httptest.NewRequest("POST", "/test/moderate", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	assert.Equal(t, beforeUnauthorized+1, requestCount("/moderate", "401"))
	assert.Equal(t, beforeInternal+1, requestCount("/test/moderate", "500"))
}
