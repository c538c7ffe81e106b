package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/service"
	"github.com/noah-isme/frontdesk-go-api/internal/utils"
)

// VisitHandler handles the simple visit registration endpoints.
type VisitHandler struct {
	service service.VisitService
	logger  zerolog.Logger
}

// NewVisitHandler constructs the handler.
func NewVisitHandler(service service.VisitService, logger zerolog.Logger) *VisitHandler {
	return &VisitHandler{
		service: service,
		logger:  logger.With().Str("component", "visit_handler").Logger(),
	}
}

// Register wires routes for the visit types.
func (h *VisitHandler) Register(router fiber.Router) {
	router.Post("/orientations", h.createOrientation)
	router.Get("/orientations", h.listOrientations)
	router.Post("/badges", h.createBadge)
	router.Get("/badges", h.listBadges)
	router.Post("/fingerprints", h.createFingerprint)
	router.Get("/fingerprints", h.listFingerprints)
	router.Post("/team-visits", h.createTeamVisit)
	router.Get("/team-visits", h.listTeamVisits)
	router.Post("/team-visits/:id/notify", h.notifyTeamVisit)
}

// RegisterAdmin wires the staff-scoped visit routes.
func (h *VisitHandler) RegisterAdmin(router fiber.Router) {
	router.Get("/team-visits/my-visits", h.myTeamVisits)
}

func (h *VisitHandler) createOrientation(c *fiber.Ctx) error {
	var payload dto.OrientationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	visit, err := h.service.RegisterOrientation(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "orientation registered", visit)
}

func (h *VisitHandler) listOrientations(c *fiber.Ctx) error {
	visits, err := h.service.ListOrientations(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "orientations retrieved", visits)
}

func (h *VisitHandler) createBadge(c *fiber.Ctx) error {
	var payload dto.BadgeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	visit, err := h.service.RegisterBadge(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "badge appointment registered", visit)
}

func (h *VisitHandler) listBadges(c *fiber.Ctx) error {
	visits, err := h.service.ListBadges(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "badge appointments retrieved", visits)
}

func (h *VisitHandler) createFingerprint(c *fiber.Ctx) error {
	var payload dto.FingerprintCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	visit, err := h.service.RegisterFingerprint(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "fingerprint appointment registered", visit)
}

func (h *VisitHandler) listFingerprints(c *fiber.Ctx) error {
	visits, err := h.service.ListFingerprints(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "fingerprint appointments retrieved", visits)
}

func (h *VisitHandler) createTeamVisit(c *fiber.Ctx) error {
	var payload dto.TeamVisitCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	visit, err := h.service.RegisterTeamVisit(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "team visit registered", visit)
}

func (h *VisitHandler) listTeamVisits(c *fiber.Ctx) error {
	visits, err := h.service.ListTeamVisits(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "team visits retrieved", visits)
}

func (h *VisitHandler) myTeamVisits(c *fiber.Ctx) error {
	staffID, ok := c.Locals("staff_id").(uint)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "staff identity missing")
	}

	visits, err := h.service.ListTeamVisitsForMember(c.UserContext(), staffID)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "team visits retrieved", visits)
}

func (h *VisitHandler) notifyTeamVisit(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid team visit id")
	}

	visit, err := h.service.NotifyTeamVisit(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "team visit notified", visit)
}

func (h *VisitHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTeamVisitNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "team visit not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *VisitHandler) internalError(c *fiber.Ctx, err error) error {
	requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
