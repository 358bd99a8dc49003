package handlers

import (
	"voxdocs/internal/dto"
	"voxdocs/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SecretHandler resolves allow-listed third-party configuration values for
// the client, such as a payment-provider client id.
type SecretHandler struct {
	secrets *config.SecretsConfig
	logger  *zap.Logger
}

func NewSecretHandler(secrets *config.SecretsConfig, logger *zap.Logger) *SecretHandler {
	return &SecretHandler{
		secrets: secrets,
		logger:  logger,
	}
}

// GetSecret godoc
// @Summary Fetch a client configuration value
// @Description Returns the named allow-listed configuration value
// @Tags secrets
// @Accept json
// @Produce json
// @Param request body dto.SecretRequest true "Secret name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/secrets [post]
func (h *SecretHandler) GetSecret(c *fiber.Ctx) error {
	var req dto.SecretRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if req.SecretName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "secretName is required",
		})
	}

	value, ok := h.secrets.Values[req.SecretName]
	if !ok {
		h.logger.Warn("Unknown secret requested", zap.String("name", req.SecretName))
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Secret not found",
		})
	}

	return c.JSON(fiber.Map{req.SecretName: value})
}
