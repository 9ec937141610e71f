package handler

import (
	"errors"

	"phone_store/constants"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAddress(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateAddress").(model.CreateAddressInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	address, err := addressService.Create(input)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, address)
}

func EditAddress(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputEditAddress").(model.UpdateAddressInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	address, err := addressService.Update(uint(id), input)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, address)
}

func DeleteAddress(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	if err := addressService.Delete(uint(id)); err != nil {
		return serviceErrorResponse(c, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

func SetDefaultAddress(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	address, err := addressService.SetDefault(uint(id))
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, address)
}
