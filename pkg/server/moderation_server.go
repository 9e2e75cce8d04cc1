package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/flagwise/flagwise/pkg/config"
	handlers "github.com/flagwise/flagwise/pkg/handlers/http"
	infraPrometheus "github.com/flagwise/flagwise/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ModerationServerDI struct {
		HandlerTransport handlers.HandlerTransport
		Config           *config.Config
		Logger           *logrus.Logger
	}
	ModerationServer struct {
		*BaseServer
		handlerTransport handlers.HandlerTransport
	}
)

func NewModerationServer(di ModerationServerDI) *ModerationServer {
	return &ModerationServer{
		BaseServer:       NewBaseServer(di.Config, di.Logger),
		handlerTransport: di.HandlerTransport,
	}
}

func (s *ModerationServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting moderation server")
	return s.router.Listen(addr)
}

// countRequest records every handled request by endpoint and response status.
// Errors are counted with the status the error handler will map them to.
func countRequest(c *fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
	}
	infraPrometheus.RequestTotal.WithLabelValues(c.Path(), strconv.Itoa(status)).Inc()
	return err
}

func (s *ModerationServer) setupRoutes() {
	s.router.Use(countRequest)

	s.router.Post("/moderate", s.handlerTransport.ModerateHandler.Handle)

	test := s.router.Group("/test")
	{
		test.Post("/moderate", s.handlerTransport.TestModerateHandler.Handle)
	}

	s.router.Get("/version", s.handlerTransport.GetVersionHandler.Handle)
}

func (s *ModerationServer) Shutdown() error {
	return s.router.Shutdown()
}
