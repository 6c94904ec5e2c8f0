package controller

import (
	"talentflow-be/internal/dto"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Assign(ctx *fiber.Ctx) error
	Grade(ctx *fiber.Ctx) error
	AttemptsFor(ctx *fiber.Ctx) error
	PendingAttempts(ctx *fiber.Ctx) error
	StatsFor(ctx *fiber.Ctx) error
}

type quizController struct {
	quizService service.IQuizService
}

func NewQuizController(quizService service.IQuizService) IQuizController {
	return &quizController{
		quizService: quizService,
	}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quiz/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post("assign", c.Assign)
	h.Put("attempt/:id/grade", c.Grade)
	// registered before the param route so "pending" is not taken for an id
	h.Get("attempts/pending", c.PendingAttempts)
	h.Get("attempts/:freelancerId", c.AttemptsFor)
	h.Get("stats/:freelancerId", c.StatsFor)
}

func (c *quizController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create quiz", res))
}

func (c *quizController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quiz id")
	}

	var req dto.UpdateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update quiz", res))
}

func (c *quizController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quiz id")
	}

	if err := c.quizService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete quiz", nil))
}

func (c *quizController) List(ctx *fiber.Ctx) error {
	res, err := c.quizService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list quizzes", res))
}

func (c *quizController) Assign(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.AssignQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Assign(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success assign quiz", res))
}

func (c *quizController) Grade(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid attempt id")
	}

	var req dto.GradeAttemptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.AttemptId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Grade(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success grade attempt", res))
}

func (c *quizController) AttemptsFor(ctx *fiber.Ctx) error {
	freelancerId, err := uuid.Parse(ctx.Params("freelancerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	res, err := c.quizService.AttemptsFor(ctx.Context(), freelancerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list attempts", res))
}

func (c *quizController) PendingAttempts(ctx *fiber.Ctx) error {
	res, err := c.quizService.PendingAttempts(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pending attempts", res))
}

func (c *quizController) StatsFor(ctx *fiber.Ctx) error {
	freelancerId, err := uuid.Parse(ctx.Params("freelancerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	res, err := c.quizService.StatsFor(ctx.Context(), freelancerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show quiz stats", res))
}
