package controller

import (
	"talentflow-be/internal/dto"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	DocumentsFor(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Send)
	h.Put(":id/status", c.UpdateStatus)
	h.Get("freelancer/:freelancerId", c.DocumentsFor)
}

func (c *documentController) Send(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.SendDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.Send(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send document", res))
}

func (c *documentController) UpdateStatus(ctx *fiber.Ctx) error {
	userId, err := serverutils.AuthenticatedUserId(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	var req dto.UpdateDocumentStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.UpdateStatus(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update document status", res))
}

func (c *documentController) DocumentsFor(ctx *fiber.Ctx) error {
	freelancerId, err := uuid.Parse(ctx.Params("freelancerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid freelancer id")
	}

	res, err := c.documentService.DocumentsFor(ctx.Context(), freelancerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}
