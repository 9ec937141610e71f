package model

// InventoryTx sổ kho append-only: mỗi thay đổi tồn kho một dòng, có lý do và người thao tác.
// Không bao giờ sửa hay xoá.
type InventoryTx struct {
	DTO
	VariantID uint    `gorm:"index;not null" json:"variantId"`
	Variant   Variant `json:"-"`
	Type      string  `gorm:"size:20;not null" json:"type"` // RESTOCK, SALE, RETURN, ADJUSTMENT
	Quantity  int     `gorm:"not null" json:"quantity"`     // delta có dấu
	Reason    string  `json:"reason"`
	CreatedBy uint    `json:"createdBy"`
}

func (InventoryTx) TableName() string { return "inventory_txs" }

type AdjustInventoryInput struct {
	VariantID uint   `json:"variantId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	ActorID   uint   `json:"actorId" validate:"required"`
}

type SetStockInput struct {
	StockQuantity int  `json:"stockQuantity" validate:"gte=0"`
	ActorID       uint `json:"actorId" validate:"required"`
}
