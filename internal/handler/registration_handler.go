package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/service"
	"github.com/noah-isme/frontdesk-go-api/internal/utils"
)

// RegistrationHandler handles the info-session registration endpoints.
type RegistrationHandler struct {
	service service.RegistrationService
	logger  zerolog.Logger
}

// NewRegistrationHandler constructs the handler.
func NewRegistrationHandler(service service.RegistrationService, logger zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
		logger:  logger.With().Str("component", "registration_handler").Logger(),
	}
}

// Register wires routes for registrations.
func (h *RegistrationHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("/live", h.listLive)
	router.Get("/completed", h.listCompleted)
	router.Get("/:id", h.get)
	router.Post("/:id/steps/:stepName/complete", h.completeStep)
	router.Post("/:id/complete", h.complete)
}

func (h *RegistrationHandler) create(c *fiber.Ctx) error {
	var payload dto.RegistrationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	registration, err := h.service.Register(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "registration created", registration)
}

func (h *RegistrationHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid registration id")
	}

	registration, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "registration retrieved", registration)
}

func (h *RegistrationHandler) completeStep(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid registration id")
	}
	stepName := c.Params("stepName")

	step, err := h.service.CompleteStep(c.UserContext(), id, stepName)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "step completed", step)
}

func (h *RegistrationHandler) complete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid registration id")
	}

	registration, err := h.service.CompleteRegistration(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "registration completed", registration)
}

func (h *RegistrationHandler) listLive(c *fiber.Ctx) error {
	registrations, err := h.service.ListLive(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "live registrations retrieved", registrations)
}

func (h *RegistrationHandler) listCompleted(c *fiber.Ctx) error {
	registrations, err := h.service.ListCompleted(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "completed registrations retrieved", registrations)
}

func (h *RegistrationHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrRegistrationNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "registration not found")
	case errors.Is(err, service.ErrStepNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "registration step not found")
	case errors.Is(err, service.ErrInvalidTimeSlot):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrScreeningUnavailable):
		return utils.SendError(c, fiber.StatusServiceUnavailable, "exclusion screening unavailable")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *RegistrationHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
