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

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput
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

		if input.Status != "" && !utils.IsValidValueOfConstant(input.Status, constants.PRODUCT_STATUSES) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Trạng thái sản phẩm không hợp lệ", errors.New("invalid status"))
		}

		ok, err := helper.IsStaffOrAdmin(input.ActorID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not staff"))
		}

		c.Locals("inputCreateProduct", input)
		return c.Next()
	}
}

func EditProduct(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateProductInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if input.Status != nil && !utils.IsValidValueOfConstant(*input.Status, constants.PRODUCT_STATUSES) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Trạng thái sản phẩm không hợp lệ", errors.New("invalid status"))
		}

		c.Locals("inputId", valueKey)
		c.Locals("inputEditProduct", input)
		return c.Next()
	}
}

func EditVariant(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateVariantInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if input.Price != nil && *input.Price < 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Giá không được âm", errors.New("negative price"))
		}

		c.Locals("inputId", valueKey)
		c.Locals("inputEditVariant", input)
		return c.Next()
	}
}
