package handlers

import (
	"strconv"

	"cosec/internal/logger"
	"cosec/internal/services/feetier"
	"cosec/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type FeeTierHandler struct {
	service feetier.Service
	log     *logger.Logger
}

func NewFeeTierHandler(service feetier.Service, log *logger.Logger) *FeeTierHandler {
	return &FeeTierHandler{service: service, log: orNop(log)}
}

func (h *FeeTierHandler) List(c *fiber.Ctx) error {
	tiers, err := h.service.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Fee tiers retrieved", tiers)
}

func (h *FeeTierHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid fee tier ID")
	}

	tier, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Fee tier retrieved", tier)
}

func (h *FeeTierHandler) Create(c *fiber.Ctx) error {
	var input feetier.TierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tier, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Created(c, "Fee tier created", tier)
}

func (h *FeeTierHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid fee tier ID")
	}

	var input feetier.TierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tier, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Fee tier updated", tier)
}

func (h *FeeTierHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid fee tier ID")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Fee tier deleted", nil)
}

// Audit reports gaps and overlaps. ?step= sets the adjacency tolerance.
func (h *FeeTierHandler) Audit(c *fiber.Ctx) error {
	step := feetier.DefaultAuditStep
	if raw := c.Query("step"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "step must be a positive number")
		}
		step = parsed
	}

	findings, err := h.service.Audit(c.UserContext(), step)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Fee tier audit complete", fiber.Map{
		"clean":    len(findings) == 0,
		"step":     step,
		"findings": findings,
	})
}
