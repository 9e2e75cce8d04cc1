package http

import (
	"strings"

	appModeration "github.com/flagwise/flagwise/pkg/app/moderation"
	"github.com/flagwise/flagwise/pkg/handlers/http/request"
	"github.com/flagwise/flagwise/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type testModerateHandler struct {
	logger    *logrus.Logger
	moderator appModeration.Service
}

func NewTestModerateHandler(logger *logrus.Logger, moderator appModeration.Service) Handler {
	return &testModerateHandler{
		logger:    logger,
		moderator: moderator,
	}
}

// Handle @Summary Moderate content without persistence
// @Description Scores the submitted content; no API key and no stored result
// @Tags Moderation
// @Accept json
// @Produce json
// @Param moderate body request.TestModerateRequest true "Moderation request body"
// @Success 200 {object} response.ModerationResponse "Ordered flag records"
// @Failure 400 {object} map[string]interface{} "Missing or empty content"
// @Router /test/moderate [post]
func (h *testModerateHandler) Handle(c *fiber.Ctx) error {
	var req request.TestModerateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to bind test moderate request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}

	records := h.moderator.Moderate(c.Context(), req.Content)

	return c.Status(fiber.StatusOK).JSON(response.ModerationResponse{Flags: records})
}
