package controller

import (
	"talentflow-be/internal/dto"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router)
	FindMatches(ctx *fiber.Ctx) error
	SaveFilters(ctx *fiber.Ctx) error
	LoadFilters(ctx *fiber.Ctx) error
	ClearFilters(ctx *fiber.Ctx) error
}

type matchController struct {
	matchService service.IMatchService
}

func NewMatchController(matchService service.IMatchService) IMatchController {
	return &matchController{
		matchService: matchService,
	}
}

func (c *matchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/match/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("find", c.FindMatches)
	h.Put("filters", c.SaveFilters)
	h.Get("filters", c.LoadFilters)
	h.Delete("filters", c.ClearFilters)
}

func (c *matchController) FindMatches(ctx *fiber.Ctx) error {
	var req dto.FindMatchesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.matchService.FindMatches(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success find matches", res))
}

// Filter state is keyed by the authenticated user, so the board each
// recruiter reopens is the one they left.
func (c *matchController) SaveFilters(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveFiltersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.OwnerId = userId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.matchService.SaveFilters(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success save filters", nil))
}

func (c *matchController) LoadFilters(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.matchService.LoadFilters(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load filters", res))
}

func (c *matchController) ClearFilters(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	if err := c.matchService.ClearFilters(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear filters", nil))
}
