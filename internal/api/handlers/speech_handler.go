package handlers

import (
	"voxdocs/internal/dto"
	"voxdocs/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SpeechHandler struct {
	tts    *service.TTSService
	logger *zap.Logger
}

func NewSpeechHandler(tts *service.TTSService, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{
		tts:    tts,
		logger: logger,
	}
}

// Synthesize godoc
// @Summary Synthesize speech from text
// @Description Streams back raw MP3 bytes for the given text
// @Tags speech
// @Accept json
// @Produce audio/mpeg
// @Param request body dto.SpeechRequest true "Text to synthesize"
// @Security Bearer
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/speech [post]
func (h *SpeechHandler) Synthesize(c *fiber.Ctx) error {
	var req dto.SpeechRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Text is required",
		})
	}

	userID, _ := c.Locals("userID").(string)

	audio, err := h.tts.Synthesize(c.Context(), req.Text)
	if err != nil {
		h.logger.Error("Failed to synthesize speech",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to synthesize speech",
		})
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Send(audio)
}
