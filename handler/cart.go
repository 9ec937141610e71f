package handler

import (
	"errors"

	"phone_store/constants"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
)

func GetUserCart(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	cart, err := cartService.GetByUser(uint(id))
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}

func AddCartItem(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAddCartItem").(model.AddCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	cart, err := cartService.AddItem(input.UserID, input.VariantID, input.Qty)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}

func UpdateCartQty(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputUpdateCartQty").(model.UpdateCartQtyInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	cart, err := cartService.UpdateQty(uint(id), input.Qty)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}

func RemoveCartItem(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	cart, err := cartService.RemoveItem(uint(id))
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}
