package handler

import (
	"errors"

	"phone_store/constants"
	"phone_store/database"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
)

func GetOrderNotes(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	db := database.DB
	var notes []model.StaffNote
	if err := db.Preload("Staff").Where("order_id = ?", id).Order("id asc").Find(&notes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, notes)
}

func CreateStaffNote(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateStaffNote").(model.CreateStaffNoteInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	note, err := orderService.AddNote(input)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, note)
}

func EditStaffNote(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputEditStaffNote").(model.UpdateStaffNoteInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	note, err := orderService.EditNote(uint(id), input)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, note)
}

func DeleteStaffNote(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	if err := orderService.DeleteNote(uint(id)); err != nil {
		return serviceErrorResponse(c, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
