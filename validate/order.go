package validate

import (
	"errors"
	"fmt"
	"strconv"

	"phone_store/constants"
	"phone_store/helper"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
)

func PlaceOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PlaceOrderInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputPlaceOrder", input)
		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Đổi trạng thái đơn là thao tác back-office
		ok, err := helper.IsStaffOrAdmin(input.ActorID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not staff"))
		}

		c.Locals("inputId", valueKey)
		c.Locals("inputUpdateOrderStatus", input)
		return c.Next()
	}
}

func FilterOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterOrderInput
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Status != "" && !utils.IsValidValueOfConstant(input.Status, constants.ORDER_STATUSES) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Trạng thái đơn hàng không hợp lệ", errors.New("invalid status"))
		}

		c.Locals("inputFilterOrder", input)
		return c.Next()
	}
}
