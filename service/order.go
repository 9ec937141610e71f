package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"phone_store/constants"
	"phone_store/model"
	"phone_store/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sơ đồ chuyển trạng thái đơn hàng. COMPLETED và CANCELLED là trạng thái cuối.
var orderTransitions = map[string][]string{
	constants.ORDER_PENDING:   {constants.ORDER_CONFIRMED, constants.ORDER_CANCELLED},
	constants.ORDER_CONFIRMED: {constants.ORDER_COMPLETED, constants.ORDER_CANCELLED},
	constants.ORDER_COMPLETED: {},
	constants.ORDER_CANCELLED: {},
}

func canTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderService điều khiển vòng đời đơn hàng. Kho chỉ bị trừ khi nhân viên
// xác nhận đơn (PENDING -> CONFIRMED), không trừ lúc đặt.
type OrderService struct {
	DB        *gorm.DB
	Inventory InventoryService
}

// PlaceOrder chuyển giỏ hàng thành đơn PENDING và xoá giỏ, tất cả trong một transaction
func (s OrderService) PlaceOrder(input model.PlaceOrderInput) (*model.Order, error) {
	sa := input.ShippingAddress
	if err := validateAddressFields(sa.RecipientName, sa.PhoneNumber, sa.Line1, sa.Ward, sa.District, sa.Province); err != nil {
		return nil, err
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = constants.PAYMENT_COD
	}
	if !utils.IsValidValueOfConstant(paymentMethod, constants.PAYMENT_METHODS) {
		return nil, &ValidationError{Message: "Phương thức thanh toán không hợp lệ"}
	}

	var user model.User
	if err := s.DB.First(&user, input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Người dùng"}
		}
		return nil, err
	}

	var order model.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cart model.Cart
		err := tx.Preload("Items.Variant.Product").Where("user_id = ?", input.UserID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			return &ValidationError{Message: "Giỏ hàng đang trống"}
		}
		if err != nil {
			return err
		}

		// Kiểm tra đủ hàng cho toàn bộ giỏ trước, không trừ kho ở bước này
		var subtotal float64
		items := make([]model.OrderItem, 0, len(cart.Items))
		for _, ci := range cart.Items {
			if ci.Qty > ci.Variant.StockQuantity {
				return &ValidationError{
					Message: fmt.Sprintf("%s - %s: chỉ còn %d sản phẩm trong kho", ci.Variant.Product.Name, ci.Variant.Name, ci.Variant.StockQuantity),
				}
			}
			lineTotal := float64(ci.Qty) * ci.UnitPrice
			subtotal += lineTotal
			items = append(items, model.OrderItem{
				VariantID:           ci.VariantID,
				ProductNameSnapshot: ci.Variant.Product.Name,
				VariantNameSnapshot: ci.Variant.Name,
				Quantity:            ci.Qty,
				UnitPrice:           ci.UnitPrice,
				LineTotal:           lineTotal,
			})
		}

		order = model.Order{
			PublicCode:      "ORD-" + strings.ToUpper(uuid.New().String()[:8]),
			UserID:          input.UserID,
			Status:          constants.ORDER_PENDING,
			Subtotal:        subtotal,
			ShippingFee:     constants.SHIPPING_FEE,
			TotalAmount:     subtotal + constants.SHIPPING_FEE,
			PaymentMethod:   paymentMethod,
			ShippingAddress: sa.Format(),
			Items:           items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Đặt xong thì giỏ về rỗng
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&cart).Updates(map[string]interface{}{
			"total_items":  0,
			"total_amount": 0,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus áp state machine và xử lý kho đi kèm trong cùng transaction:
// PENDING -> CONFIRMED trừ kho (SALE), CONFIRMED -> CANCELLED hoàn kho (RETURN)
func (s OrderService) UpdateStatus(orderID uint, input model.UpdateOrderStatusInput) (*model.Order, error) {
	if !utils.IsValidValueOfConstant(input.Status, constants.ORDER_STATUSES) {
		return nil, &ValidationError{Message: "Trạng thái đơn hàng không hợp lệ"}
	}

	var actor model.User
	if err := s.DB.First(&actor, input.ActorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Người dùng"}
		}
		return nil, err
	}

	var order model.Order
	if err := s.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Đơn hàng"}
		}
		return nil, err
	}

	if !canTransition(order.Status, input.Status) {
		return nil, &InvalidTransitionError{From: order.Status, To: input.Status}
	}

	now := time.Now()
	updates := map[string]interface{}{"status": input.Status}
	switch input.Status {
	case constants.ORDER_CONFIRMED:
		updates["confirmed_at"] = now
		updates["confirmed_by"] = input.ActorID
	case constants.ORDER_COMPLETED:
		updates["completed_at"] = now
		updates["completed_by"] = input.ActorID
	case constants.ORDER_CANCELLED:
		updates["cancelled_at"] = now
		updates["cancelled_by"] = input.ActorID
		updates["cancel_reason"] = strings.TrimSpace(input.CancelReason)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Ghi trạng thái có điều kiện trên trạng thái đã đọc: hai request xác nhận
		// cùng một đơn thì chỉ request thắng mới đi tiếp tới phần trừ kho,
		// request thua thấy RowsAffected = 0 và bị từ chối ngay tại đây
		res := tx.Model(&model.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var current model.Order
			if err := tx.First(&current, order.ID).Error; err != nil {
				return err
			}
			return &InvalidTransitionError{From: current.Status, To: input.Status}
		}

		if order.Status == constants.ORDER_PENDING && input.Status == constants.ORDER_CONFIRMED {
			for _, item := range order.Items {
				if _, err := s.Inventory.adjustTx(tx, item.VariantID, -item.Quantity,
					constants.INVENTORY_SALE, "Xác nhận đơn hàng "+order.PublicCode, input.ActorID); err != nil {
					return err
				}
			}
		}
		if order.Status == constants.ORDER_CONFIRMED && input.Status == constants.ORDER_CANCELLED {
			for _, item := range order.Items {
				if _, err := s.Inventory.adjustTx(tx, item.VariantID, item.Quantity,
					constants.INVENTORY_RETURN, "Hủy đơn hàng "+order.PublicCode, input.ActorID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Items").Preload("User").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s OrderService) AddNote(input model.CreateStaffNoteInput) (*model.StaffNote, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, &ValidationError{Message: "Nội dung ghi chú không được để trống"}
	}
	var order model.Order
	if err := s.DB.First(&order, input.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Đơn hàng"}
		}
		return nil, err
	}
	var staff model.User
	if err := s.DB.First(&staff, input.StaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Người dùng"}
		}
		return nil, err
	}

	note := model.StaffNote{
		OrderID: input.OrderID,
		StaffID: input.StaffID,
		Content: content,
	}
	if err := s.DB.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s OrderService) EditNote(noteID uint, input model.UpdateStaffNoteInput) (*model.StaffNote, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, &ValidationError{Message: "Nội dung ghi chú không được để trống"}
	}
	var note model.StaffNote
	if err := s.DB.First(&note, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Ghi chú"}
		}
		return nil, err
	}
	note.Content = content
	if err := s.DB.Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s OrderService) DeleteNote(noteID uint) error {
	var note model.StaffNote
	if err := s.DB.First(&note, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Ghi chú"}
		}
		return err
	}
	return s.DB.Delete(&model.StaffNote{}, note.ID).Error
}
