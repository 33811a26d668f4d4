package handlers

import (
	"strconv"

	"cosec/internal/logger"
	"cosec/internal/models"
	"cosec/internal/services/specialist"
	"cosec/internal/utils/pagination"
	"cosec/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type SpecialistHandler struct {
	service specialist.Service
	log     *logger.Logger
}

func NewSpecialistHandler(service specialist.Service, log *logger.Logger) *SpecialistHandler {
	return &SpecialistHandler{service: service, log: orNop(log)}
}

// List serves published listings.
func (h *SpecialistHandler) List(c *fiber.Ctx) error {
	return h.list(c, false)
}

// AdminList also serves drafts when include_drafts=true.
func (h *SpecialistHandler) AdminList(c *fiber.Ctx) error {
	includeDrafts, _ := strconv.ParseBool(c.Query("include_drafts"))
	return h.list(c, includeDrafts)
}

func (h *SpecialistHandler) list(c *fiber.Ctx, includeDrafts bool) error {
	p := pagination.ParseFromRequest(c)
	filter := models.SpecialistFilter{
		Category:      c.Query("category"),
		State:         c.Query("state"),
		Search:        c.Query("search"),
		IncludeDrafts: includeDrafts,
	}

	items, total, err := h.service.List(c.UserContext(), filter, p.Limit, p.Offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, items))
}

// Get hides drafts from the public.
func (h *SpecialistHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid specialist ID")
	}

	sp, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if sp.IsDraft {
		return writeError(c, h.log, specialist.ErrSpecialistNotFound)
	}
	return response.Success(c, "Specialist retrieved", sp)
}

func (h *SpecialistHandler) Create(c *fiber.Ctx) error {
	var input specialist.SpecialistInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sp, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Created(c, "Specialist created", sp)
}

func (h *SpecialistHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid specialist ID")
	}

	var input specialist.SpecialistInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sp, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Specialist updated", sp)
}

func (h *SpecialistHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid specialist ID")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Specialist deleted", nil)
}

// Quote prices base_price against the current tier table. Negative and
// non-finite values are priced as zero by the calculator.
func (h *SpecialistHandler) Quote(c *fiber.Ctx) error {
	raw := c.Query("base_price")
	if raw == "" {
		return response.BadRequest(c, "base_price is required")
	}
	basePrice, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return response.BadRequest(c, "base_price must be a number")
	}

	result, err := h.service.Quote(c.UserContext(), basePrice)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Price calculated", result)
}
