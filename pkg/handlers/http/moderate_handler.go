package http

import (
	"errors"
	"strings"
	"time"

	appApiKey "github.com/flagwise/flagwise/pkg/app/apikey"
	appModeration "github.com/flagwise/flagwise/pkg/app/moderation"
	domainApiKey "github.com/flagwise/flagwise/pkg/domain/apikey"
	domainModeration "github.com/flagwise/flagwise/pkg/domain/moderation"
	"github.com/flagwise/flagwise/pkg/handlers/http/request"
	"github.com/flagwise/flagwise/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type moderateHandler struct {
	logger     *logrus.Logger
	keyFinder  appApiKey.Finder
	moderator  appModeration.Service
	resultRepo domainModeration.Repository
}

func NewModerateHandler(
	logger *logrus.Logger,
	keyFinder appApiKey.Finder,
	moderator appModeration.Service,
	resultRepo domainModeration.Repository,
) Handler {
	return &moderateHandler{
		logger:     logger,
		keyFinder:  keyFinder,
		moderator:  moderator,
		resultRepo: resultRepo,
	}
}

// Handle @Summary Moderate content
// @Description Scores the submitted content against every flag type and stores the dominant flag
// @Tags Moderation
// @Accept json
// @Produce json
// @Param moderate body request.ModerateRequest true "Moderation request body"
// @Success 200 {object} response.ModerationResponse "Ordered flag records"
// @Failure 400 {object} map[string]interface{} "Missing or empty content"
// @Failure 401 {object} map[string]interface{} "Missing API key"
// @Failure 403 {object} map[string]interface{} "Invalid API key"
// @Failure 500 {object} map[string]interface{} "Persistence failure"
// @Router /moderate [post]
func (h *moderateHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to bind moderate request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}

	if req.APIKey == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "API key required"})
	}

	key, err := h.keyFinder.Find(c.Context(), req.APIKey)
	if err != nil {
		if errors.Is(err, domainApiKey.ErrKeyNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid API key"})
		}
		h.logger.WithError(err).Error("apikey lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to verify API key",
			"details": err.Error(),
		})
	}
	if !key.IsValid() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid API key"})
	}

	records := h.moderator.Moderate(c.Context(), req.Content)
	verdict := appModeration.DeriveVerdict(records)

	id, err := uuid.NewV6()
	if err != nil {
		h.logger.WithError(err).Error("failed to generate UUID")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to store moderation result",
			"details": err.Error(),
		})
	}

	result := &domainModeration.Result{
		ID:        id,
		Content:   req.Content,
		APIKeyID:  key.ID,
		Flag:      string(verdict.Flag),
		Score:     verdict.Score,
		Flagged:   verdict.Flagged,
		Status:    verdict.Status,
		CreatedAt: time.Now(),
	}

	if err := h.resultRepo.Create(c.Context(), result); err != nil {
		h.logger.WithError(err).Error("failed to store moderation result")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to store moderation result",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(response.ModerationResponse{Flags: records})
}
