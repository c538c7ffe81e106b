package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/service"
	"github.com/noah-isme/frontdesk-go-api/internal/utils"
)

// ExclusionHandler handles exclusion-list screening and maintenance.
type ExclusionHandler struct {
	service service.ScreeningService
	logger  zerolog.Logger
}

// NewExclusionHandler constructs the handler.
func NewExclusionHandler(service service.ScreeningService, logger zerolog.Logger) *ExclusionHandler {
	return &ExclusionHandler{
		service: service,
		logger:  logger.With().Str("component", "exclusion_handler").Logger(),
	}
}

// Register wires the on-demand check route. The kiosk uses it before the
// visitor commits to a registration.
func (h *ExclusionHandler) Register(router fiber.Router) {
	router.Post("/check", h.check)
}

// RegisterAdmin wires the staff-only list maintenance routes.
func (h *ExclusionHandler) RegisterAdmin(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *ExclusionHandler) check(c *fiber.Ctx) error {
	var payload dto.ExclusionCheckRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.FirstName == "" || payload.LastName == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "first and last name are required")
	}

	result, err := h.service.Check(c.UserContext(), payload.FirstName, payload.LastName)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "exclusion check completed", result)
}

func (h *ExclusionHandler) list(c *fiber.Ctx) error {
	entries, err := h.service.ListEntries(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "exclusion entries retrieved", entries)
}

func (h *ExclusionHandler) create(c *fiber.Ctx) error {
	var payload dto.ExclusionEntryCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := h.service.AddEntry(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "exclusion entry added", entry)
}

func (h *ExclusionHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrScreeningUnavailable):
		return utils.SendError(c, fiber.StatusServiceUnavailable, "exclusion screening unavailable")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *ExclusionHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
