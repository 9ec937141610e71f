package handler

import (
	"errors"

	"phone_store/service"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	addressService   service.AddressService
	inventoryService service.InventoryService
	cartService      service.CartService
	orderService     service.OrderService
)

// InitServices gắn các service vào DB, gọi một lần sau database.ConnectDB
func InitServices(db *gorm.DB) {
	addressService = service.AddressService{DB: db}
	inventoryService = service.InventoryService{DB: db}
	cartService = service.CartService{DB: db}
	orderService = service.OrderService{DB: db, Inventory: inventoryService}
}

// serviceErrorResponse ánh xạ lỗi nghiệp vụ sang HTTP status
func serviceErrorResponse(c *fiber.Ctx, message string, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, ve.Message, err)
	}
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, nf.Error(), err)
	}
	var ce *service.ConflictError
	if errors.As(err, &ce) {
		return utils.ErrorResponse(c, fiber.StatusConflict, ce.Message, err)
	}
	var ite *service.InvalidTransitionError
	if errors.As(err, &ite) {
		return utils.ErrorResponse(c, fiber.StatusConflict, ite.Error(), err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}
