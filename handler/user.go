package handler

import (
	"errors"
	"fmt"

	"phone_store/constants"
	"phone_store/database"
	"phone_store/helper"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetAllUsers(c *fiber.Ctx) error {
	db := database.DB
	var users []model.User
	if err := db.Preload("Role").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

func GetUserById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	db := database.DB
	var user model.User
	if err := db.Preload("Role").Preload("Addresses").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Người dùng không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func RegisterUser(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegisterUser").(model.RegisterUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email đã được sử dụng", fmt.Errorf("email already exists"))
	}

	db := database.DB
	var role model.Role
	if err := db.Where("name = ?", constants.ROLE_CUSTOMER).First(&role).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var user model.User
	copier.Copy(&user, &input)
	user.RoleID = role.ID

	if err := db.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Role").First(&user, user.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

// Login tra cứu theo email, nếu truyền role thì phải khớp vai trò hiện tại
func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Email chưa được đăng ký", errors.New("user not found"))
	}
	if input.Role != "" && user.Role.Name != input.Role {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Tài khoản không có vai trò này", errors.New("role mismatch"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateUserRole(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputUpdateUserRole").(model.UpdateUserRoleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	// Chỉ admin mới được đổi vai trò
	isAdmin, err := helper.IsAdmin(input.ActorID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Người dùng không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var role model.Role
	if err := db.Where("name = ?", input.Role).First(&role).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Vai trò không tồn tại", err)
	}

	if err := db.Model(&user).Update("role_id", role.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Role").First(&user, user.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func GetUserAddresses(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	db := database.DB
	var addresses []model.Address
	if err := db.Where("user_id = ?", id).Order("is_default desc, id asc").Find(&addresses).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, addresses)
}

func GetUserOrders(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	db := database.DB
	var orders []model.Order
	if err := db.Preload("Items").Where("user_id = ?", id).Order("id desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}
