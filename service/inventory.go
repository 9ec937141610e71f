package service

import (
	"errors"
	"fmt"

	"phone_store/constants"
	"phone_store/model"
	"phone_store/utils"

	"gorm.io/gorm"
)

// InventoryService: Variant.StockQuantity là nguồn số liệu cho trang bán hàng,
// InventoryTx là sổ kho append-only phục vụ truy vết. Mọi thay đổi tồn kho
// đi qua Adjust/SetStock để counter và sổ kho luôn đi cùng nhau.
type InventoryService struct {
	DB *gorm.DB
}

// Adjust ghi một dòng sổ kho và dịch counter theo delta, từ chối nếu kết quả âm
func (s InventoryService) Adjust(variantID uint, delta int, txType, reason string, actorID uint) (*model.Variant, error) {
	if !utils.IsValidValueOfConstant(txType, constants.INVENTORY_TYPES) {
		return nil, &ValidationError{Message: "Loại giao dịch kho không hợp lệ"}
	}
	var variant *model.Variant
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		variant, err = s.adjustTx(tx, variantID, delta, txType, reason, actorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return variant, nil
}

// adjustTx chạy trong transaction của caller (dùng chung với luồng xác nhận/hủy đơn).
// Guard chống âm kho nằm ngay trong câu UPDATE nên hai request trừ kho
// đồng thời không thể cùng đẩy tồn xuống dưới 0.
func (s InventoryService) adjustTx(tx *gorm.DB, variantID uint, delta int, txType, reason string, actorID uint) (*model.Variant, error) {
	var variant model.Variant
	if err := tx.First(&variant, variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Phiên bản sản phẩm"}
		}
		return nil, err
	}

	res := tx.Model(&model.Variant{}).
		Where("id = ? AND stock_quantity + ? >= 0", variantID, delta).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Tồn kho không đủ: hiện còn %d, yêu cầu trừ %d", variant.StockQuantity, -delta),
		}
	}

	if err := tx.First(&variant, variantID).Error; err != nil {
		return nil, err
	}
	// Đồng bộ trạng thái hiển thị theo tồn kho (DISCONTINUED giữ nguyên)
	if variant.Status != constants.VARIANT_DISCONTINUED {
		status := constants.VARIANT_IN_STOCK
		if variant.StockQuantity == 0 {
			status = constants.VARIANT_OUT_OF_STOCK
		}
		if status != variant.Status {
			if err := tx.Model(&variant).Update("status", status).Error; err != nil {
				return nil, err
			}
			variant.Status = status
		}
	}

	invTx := model.InventoryTx{
		VariantID: variantID,
		Type:      txType,
		Quantity:  delta,
		Reason:    reason,
		CreatedBy: actorID,
	}
	if err := tx.Create(&invTx).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// SetStock ghi đè tồn kho tuyệt đối (màn hình quản kho của admin).
// Luôn sinh một dòng ADJUSTMENT để sổ kho không bị hổng.
func (s InventoryService) SetStock(variantID uint, newStock int, actorID uint) (*model.Variant, error) {
	if newStock < 0 {
		return nil, &ValidationError{Message: "Tồn kho không được âm"}
	}
	var variant model.Variant
	if err := s.DB.First(&variant, variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Phiên bản sản phẩm"}
		}
		return nil, err
	}
	delta := newStock - variant.StockQuantity
	if delta == 0 {
		return &variant, nil
	}
	return s.Adjust(variantID, delta, constants.INVENTORY_ADJUSTMENT, "Cập nhật tồn kho thủ công", actorID)
}

// StockDrift một phiên bản có tổng sổ kho lệch với counter
type StockDrift struct {
	VariantID     uint  `json:"variantId"`
	LedgerTotal   int64 `json:"ledgerTotal"`
	StockQuantity int64 `json:"stockQuantity"`
}

// Reconcile đối soát tổng sổ kho với counter của từng phiên bản (chỉ đọc).
// Counter vẫn là nguồn chính; kết quả lệch chỉ để cảnh báo vận hành.
func (s InventoryService) Reconcile() ([]StockDrift, error) {
	var drifts []StockDrift
	err := s.DB.Raw(`
        SELECT v.id AS variant_id,
               COALESCE(SUM(t.quantity), 0) AS ledger_total,
               v.stock_quantity AS stock_quantity
        FROM variants v
        LEFT JOIN inventory_txs t ON t.variant_id = v.id
        GROUP BY v.id, v.stock_quantity
        HAVING COALESCE(SUM(t.quantity), 0) <> v.stock_quantity
    `).Scan(&drifts).Error
	if err != nil {
		return nil, err
	}
	return drifts, nil
}
