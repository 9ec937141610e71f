package handler

import (
	"errors"

	"phone_store/constants"
	"phone_store/database"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
)

func AdjustInventory(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputAdjustInventory").(model.AdjustInventoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	variant, err := inventoryService.Adjust(uint(id), input.Quantity, input.Type, input.Reason, input.ActorID)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, variant)
}

func SetStock(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputSetStock").(model.SetStockInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	variant, err := inventoryService.SetStock(uint(id), input.StockQuantity, input.ActorID)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, variant)
}

// GetVariantInventoryTxs lịch sử sổ kho của một phiên bản, mới nhất trước
func GetVariantInventoryTxs(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	db := database.DB
	var txs []model.InventoryTx
	if err := db.Where("variant_id = ?", id).Order("id desc").Find(&txs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, txs)
}

// ReconcileInventory đối soát thủ công qua API, trả về danh sách lệch
func ReconcileInventory(c *fiber.Ctx) error {
	drifts, err := inventoryService.Reconcile()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, drifts)
}
