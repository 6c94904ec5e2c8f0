package controller

import (
	"talentflow-be/internal/dto"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFreelancerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	FilterRoster(ctx *fiber.Ctx) error
	MoveStage(ctx *fiber.Ctx) error
	UpdateReviewStatus(ctx *fiber.Ctx) error
	AddNote(ctx *fiber.Ctx) error
	Facets(ctx *fiber.Ctx) error
	PipelineStats(ctx *fiber.Ctx) error
	Activities(ctx *fiber.Ctx) error
}

type freelancerController struct {
	freelancerService service.IFreelancerService
}

func NewFreelancerController(freelancerService service.IFreelancerService) IFreelancerController {
	return &freelancerController{
		freelancerService: freelancerService,
	}
}

func (c *freelancerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/freelancer/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("roster", c.FilterRoster)
	h.Get("search", c.Search)
	h.Get("facets", c.Facets)
	h.Get("stats", c.PipelineStats)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Put(":id/restore", c.Restore)
	h.Put(":id/stage", c.MoveStage)
	h.Put(":id/review-status", c.UpdateReviewStatus)
	h.Post(":id/note", c.AddNote)
	h.Get(":id/activities", c.Activities)
}

func (c *freelancerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFreelancerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.freelancerService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create freelancer", res))
}

func (c *freelancerController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	res, err := c.freelancerService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show freelancer", res))
}

func (c *freelancerController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	var req dto.UpdateFreelancerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.freelancerService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update freelancer", res))
}

func (c *freelancerController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	if err := c.freelancerService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete freelancer", nil))
}

func (c *freelancerController) Restore(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	if err := c.freelancerService.Restore(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success restore freelancer", nil))
}

func (c *freelancerController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
	}

	res, err := c.freelancerService.Search(ctx.Context(), query, ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search freelancers", res))
}

// FilterRoster is a POST because the filter payload nests arrays and
// tri-state flags that do not map cleanly onto a query string.
func (c *freelancerController) FilterRoster(ctx *fiber.Ctx) error {
	var req dto.RosterFilterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.freelancerService.FilterRoster(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success filter roster", res))
}

func (c *freelancerController) MoveStage(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	var req dto.MoveStageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.freelancerService.MoveStage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move stage", res))
}

func (c *freelancerController) UpdateReviewStatus(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	var req dto.UpdateReviewStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.freelancerService.UpdateReviewStatus(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update review status", nil))
}

func (c *freelancerController) AddNote(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	var req dto.AddNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.freelancerService.AddNote(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success add note", nil))
}

func (c *freelancerController) Facets(ctx *fiber.Ctx) error {
	res, err := c.freelancerService.Facets(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list facets", res))
}

func (c *freelancerController) PipelineStats(ctx *fiber.Ctx) error {
	res, err := c.freelancerService.PipelineStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show pipeline stats", res))
}

func (c *freelancerController) Activities(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	res, err := c.freelancerService.Activities(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list activities", res))
}
