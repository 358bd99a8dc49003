package handlers

import (
	"errors"

	"voxdocs/internal/dto"
	"voxdocs/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AskHandler struct {
	askService *service.AskService
	logger     *zap.Logger
}

func NewAskHandler(askService *service.AskService, logger *zap.Logger) *AskHandler {
	return &AskHandler{
		askService: askService,
		logger:     logger,
	}
}

// Ask godoc
// @Summary Answer a documentation question
// @Description Resolves a transcribed question through cache, quick responses or grounded generation and returns speech-ready text plus audio
// @Tags ask
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question text"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/ask [post]
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	result, err := h.askService.Process(c.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Question text is required",
			})
		}

		h.logger.Error("Failed to process question", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Failed to process question",
			Details: err.Error(),
		})
	}

	m := result.Metrics
	return c.JSON(dto.AskResponse{
		Response: result.Response,
		AudioURL: result.AudioURL,
		Metrics:  dto.MetricsResponse(m.TotalTime, m.CacheCheckTime, m.ResponseGenerationTime, m.AudioSynthesisTime, m.CacheHit),
	})
}
