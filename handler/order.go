package handler

import (
	"encoding/base64"
	"errors"
	"fmt"

	"phone_store/constants"
	"phone_store/database"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PlaceOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPlaceOrder").(model.PlaceOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	order, err := orderService.PlaceOrder(input)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_CREATE, err)
	}

	BroadcastOrderEvent("ORDER_PLACED", order)
	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// GetAllOrders danh sách đơn cho back-office, lọc theo trạng thái + phân trang
func GetAllOrders(c *fiber.Ctx) error {
	input, ok := c.Locals("inputFilterOrder").(model.FilterOrderInput)
	if !ok {
		input = model.FilterOrderInput{}
	}

	db := database.DB
	query := db.Model(&model.Order{}).Preload("Items").Preload("User").Order("id desc")
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}

	var totalCount int64
	query.Count(&totalCount)

	query = utils.ApplyPagination(query, input.Limit, input.Page)

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       orders,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetOrderByCode tra cứu đơn theo mã public, kèm QR của mã để quét khi giao
func GetOrderByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	db := database.DB
	var order model.Order
	if err := db.Preload("Items").Preload("User").Preload("Notes.Staff").
		Where("public_code = ?", code).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Đơn hàng không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 256)
	var qrBase64 string
	if err == nil {
		qrBase64 = base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order": order,
		"qr":    qrBase64,
	})
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputUpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	order, err := orderService.UpdateStatus(uint(id), input)
	if err != nil {
		return serviceErrorResponse(c, constants.ERROR_EDIT, err)
	}

	BroadcastOrderEvent("ORDER_STATUS_CHANGED", order)

	// Xác nhận đơn thì gửi email cho khách
	if order.Status == constants.ORDER_CONFIRMED && order.User.Email != "" {
		items := make([]utils.OrderEmailItem, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, utils.OrderEmailItem{
				ProductName: item.ProductNameSnapshot,
				VariantName: item.VariantNameSnapshot,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				LineTotal:   item.LineTotal,
			})
		}
		utils.SendOrderConfirmationEmail(order.User.Email, utils.OrderConfirmationData{
			OrderCode:       order.PublicCode,
			CustomerName:    order.User.FullName,
			Items:           items,
			Subtotal:        order.Subtotal,
			ShippingFee:     order.ShippingFee,
			TotalAmount:     order.TotalAmount,
			PaymentMethod:   order.PaymentMethod,
			ShippingAddress: order.ShippingAddress,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrderInventoryTxs(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	db := database.DB
	var order model.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Đơn hàng không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var txs []model.InventoryTx
	if err := db.Where("reason LIKE ?", fmt.Sprintf("%%%s%%", order.PublicCode)).
		Order("id asc").Find(&txs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, txs)
}
