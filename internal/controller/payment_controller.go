package controller

import (
	"talentflow-be/internal/dto"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	CreatePayout(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	PayoutsFor(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payout/v1")
	// Gateway callback authenticates via signature, not JWT.
	h.Post("midtrans/notification", c.Webhook)

	h.Post("", serverutils.JwtMiddleware, c.CreatePayout)
	h.Get("freelancer/:freelancerId", serverutils.JwtMiddleware, c.PayoutsFor)
}

func (c *paymentController) CreatePayout(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePayoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreatePayout(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create payout", res))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.PayoutNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}

func (c *paymentController) PayoutsFor(ctx *fiber.Ctx) error {
	freelancerId, err := uuid.Parse(ctx.Params("freelancerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	res, err := c.service.PayoutsFor(ctx.Context(), freelancerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list payouts", res))
}
