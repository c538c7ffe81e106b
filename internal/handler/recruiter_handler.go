package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/service"
	"github.com/noah-isme/frontdesk-go-api/internal/utils"
)

// RecruiterHandler handles the roster admin endpoints.
type RecruiterHandler struct {
	service service.RecruiterService
	logger  zerolog.Logger
}

// NewRecruiterHandler constructs the handler.
func NewRecruiterHandler(service service.RecruiterService, logger zerolog.Logger) *RecruiterHandler {
	return &RecruiterHandler{
		service: service,
		logger:  logger.With().Str("component", "recruiter_handler").Logger(),
	}
}

// Register wires routes for the roster.
func (h *RecruiterHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/available", h.listAvailable)
	router.Post("", h.create)
	router.Patch("/:id/status", h.setStatus)
	router.Delete("/:id", h.deactivate)
}

func (h *RecruiterHandler) list(c *fiber.Ctx) error {
	recruiters, err := h.service.List(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "recruiters retrieved", recruiters)
}

func (h *RecruiterHandler) listAvailable(c *fiber.Ctx) error {
	recruiters, err := h.service.ListAvailable(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "available recruiters retrieved", recruiters)
}

func (h *RecruiterHandler) create(c *fiber.Ctx) error {
	var payload dto.RecruiterCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	recruiter, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "recruiter created", recruiter)
}

func (h *RecruiterHandler) setStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid recruiter id")
	}

	var payload dto.RecruiterStatusRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	recruiter, err := h.service.SetStatus(c.UserContext(), id, payload.Status)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "recruiter status updated", recruiter)
}

func (h *RecruiterHandler) deactivate(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid recruiter id")
	}

	if err := h.service.Deactivate(c.UserContext(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "recruiter deactivated", fiber.Map{"id": id})
}

func (h *RecruiterHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrRecruiterNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "recruiter not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *RecruiterHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
