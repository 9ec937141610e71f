package service

import (
	"errors"
	"fmt"

	"phone_store/model"

	"gorm.io/gorm"
)

// CartService giỏ hàng bền theo user, tổng tiền/tổng món được tính lại
// trong cùng transaction với mỗi thao tác thêm/sửa/xoá
type CartService struct {
	DB *gorm.DB
}

func (s CartService) AddItem(userID, variantID uint, qty int) (*model.Cart, error) {
	if qty < 1 {
		return nil, &ValidationError{Message: "Số lượng phải lớn hơn 0"}
	}
	var user model.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Người dùng"}
		}
		return nil, err
	}
	var variant model.Variant
	if err := s.DB.First(&variant, variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Phiên bản sản phẩm"}
		}
		return nil, err
	}

	var cart model.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(model.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
			return err
		}

		// Cùng một variant thì gộp dòng, không tạo dòng trùng
		var item model.CartItem
		err := tx.Where("cart_id = ? AND variant_id = ?", cart.ID, variantID).First(&item).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		newQty := qty
		if item.ID != 0 {
			newQty = item.Qty + qty
		}
		if newQty > variant.StockQuantity {
			return &ValidationError{Message: fmt.Sprintf("Chỉ còn %d sản phẩm trong kho", variant.StockQuantity)}
		}

		if item.ID == 0 {
			item = model.CartItem{
				CartID:     cart.ID,
				VariantID:  variantID,
				Qty:        newQty,
				UnitPrice:  variant.Price, // chụp giá hiện tại
				LineAmount: float64(newQty) * variant.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		} else {
			item.Qty = newQty
			item.LineAmount = float64(newQty) * item.UnitPrice // giữ giá đã chụp
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}
		return s.recomputeTotals(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(cart.ID)
}

func (s CartService) UpdateQty(cartItemID uint, newQty int) (*model.Cart, error) {
	if newQty < 1 {
		return nil, &ValidationError{Message: "Số lượng phải lớn hơn 0"}
	}
	var item model.CartItem
	if err := s.DB.First(&item, cartItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Sản phẩm trong giỏ"}
		}
		return nil, err
	}
	var variant model.Variant
	if err := s.DB.First(&variant, item.VariantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Phiên bản sản phẩm"}
		}
		return nil, err
	}
	if newQty > variant.StockQuantity {
		return nil, &ValidationError{Message: fmt.Sprintf("Chỉ còn %d sản phẩm trong kho", variant.StockQuantity)}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item.Qty = newQty
		item.LineAmount = float64(newQty) * item.UnitPrice
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return s.recomputeTotals(tx, item.CartID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(item.CartID)
}

func (s CartService) RemoveItem(cartItemID uint) (*model.Cart, error) {
	var item model.CartItem
	if err := s.DB.First(&item, cartItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Sản phẩm trong giỏ"}
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.CartItem{}, item.ID).Error; err != nil {
			return err
		}
		return s.recomputeTotals(tx, item.CartID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(item.CartID)
}

// GetByUser trả về giỏ của user (giỏ rỗng nếu chưa từng thêm gì), chỉ đọc
func (s CartService) GetByUser(userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := s.DB.Preload("Items.Variant.Product").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Cart{UserID: userID, Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s CartService) recomputeTotals(tx *gorm.DB, cartID uint) error {
	var totals struct {
		TotalItems  int
		TotalAmount float64
	}
	if err := tx.Model(&model.CartItem{}).
		Select("COALESCE(SUM(qty), 0) AS total_items, COALESCE(SUM(line_amount), 0) AS total_amount").
		Where("cart_id = ?", cartID).
		Scan(&totals).Error; err != nil {
		return err
	}
	return tx.Model(&model.Cart{}).Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"total_items":  totals.TotalItems,
			"total_amount": totals.TotalAmount,
		}).Error
}

func (s CartService) reload(cartID uint) (*model.Cart, error) {
	var cart model.Cart
	if err := s.DB.Preload("Items.Variant").First(&cart, cartID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}
