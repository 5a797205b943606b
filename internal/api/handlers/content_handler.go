package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"topup-store/domain"
	"topup-store/internal/api/presenters"
	"topup-store/pkg/content"
)

type (
	ContentHandler interface {
		GetPaymentMethods(c *fiber.Ctx) error
		UpdatePaymentMethod(c *fiber.Ctx) error
		GetContentPage(c *fiber.Ctx) error
		UpdateContentPage(c *fiber.Ctx) error
	}

	contentHandler struct {
		contentService content.ContentService
		validator      *validator.Validate
	}
)

func NewContentHandler(contentService content.ContentService, validator *validator.Validate) ContentHandler {
	return &contentHandler{
		contentService: contentService,
		validator:      validator,
	}
}

func (h *contentHandler) GetPaymentMethods(c *fiber.Ctx) error {
	methods, err := h.contentService.GetPaymentMethods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPaymentMethods, err)
	}

	return presenters.SuccessResponse(c, methods, fiber.StatusOK, domain.MessageSuccessGetPaymentMethods)
}

func (h *contentHandler) UpdatePaymentMethod(c *fiber.Ctx) error {
	req := new(domain.UpdatePaymentMethodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePaymentMethod, err)
	}

	updated, err := h.contentService.UpdatePaymentMethod(c.Context(), c.Params("id"), *req)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdatePaymentMethod, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdatePaymentMethod, err)
	}

	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdatePaymentMethod)
}

func (h *contentHandler) GetContentPage(c *fiber.Ctx) error {
	page, err := h.contentService.GetContentPage(c.Context(), c.Params("section"))
	if err != nil {
		if errors.Is(err, domain.ErrContentPageNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetContentPage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetContentPage, err)
	}

	return presenters.SuccessResponse(c, page, fiber.StatusOK, domain.MessageSuccessGetContentPage)
}

func (h *contentHandler) UpdateContentPage(c *fiber.Ctx) error {
	req := new(domain.UpdateContentPageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateContentPage, err)
	}

	updated, err := h.contentService.UpdateContentPage(c.Context(), c.Params("section"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateContentPage, err)
	}

	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateContentPage)
}
