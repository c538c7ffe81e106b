package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/service"
	"github.com/noah-isme/frontdesk-go-api/internal/utils"
)

// OrientationConfigHandler handles orientation settings endpoints.
type OrientationConfigHandler struct {
	service service.OrientationConfigService
	logger  zerolog.Logger
}

// NewOrientationConfigHandler constructs the handler.
func NewOrientationConfigHandler(service service.OrientationConfigService, logger zerolog.Logger) *OrientationConfigHandler {
	return &OrientationConfigHandler{
		service: service,
		logger:  logger.With().Str("component", "orientation_config_handler").Logger(),
	}
}

// Register wires the public time-slot route used by the kiosk.
func (h *OrientationConfigHandler) Register(router fiber.Router) {
	router.Get("/time-slots", h.timeSlots)
}

// RegisterAdmin wires the staff-only settings routes.
func (h *OrientationConfigHandler) RegisterAdmin(router fiber.Router) {
	router.Get("", h.get)
	router.Put("", h.update)
}

func (h *OrientationConfigHandler) timeSlots(c *fiber.Ctx) error {
	slots, err := h.service.TimeSlots(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "time slots retrieved", fiber.Map{"time_slots": slots})
}

func (h *OrientationConfigHandler) get(c *fiber.Ctx) error {
	config, err := h.service.Get(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "orientation config retrieved", config)
}

func (h *OrientationConfigHandler) update(c *fiber.Ctx) error {
	var payload dto.OrientationConfigUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	config, err := h.service.Update(c.UserContext(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "orientation config updated", config)
}

func (h *OrientationConfigHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
