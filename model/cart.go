package model

// Cart giỏ hàng 1-1 với user, tổng được tính lại sau mỗi thao tác
type Cart struct {
	DTO
	UserID      uint       `gorm:"uniqueIndex;not null" json:"userId"`
	TotalItems  int        `gorm:"not null;default:0" json:"totalItems"`
	TotalAmount float64    `gorm:"not null;default:0" json:"totalAmount"`
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type CartItem struct {
	DTO
	CartID     uint    `gorm:"index;not null" json:"cartId"`
	VariantID  uint    `gorm:"index;not null" json:"variantId"`
	Variant    Variant `json:"variant,omitempty"`
	Qty        int     `gorm:"not null" json:"qty"`
	UnitPrice  float64 `gorm:"not null" json:"unitPrice"` // giá chụp tại thời điểm thêm vào giỏ
	LineAmount float64 `gorm:"not null" json:"lineAmount"`
}

type AddCartItemInput struct {
	UserID    uint `json:"userId" validate:"required"`
	VariantID uint `json:"variantId" validate:"required"`
	Qty       int  `json:"qty" validate:"required,gte=1"`
}

type UpdateCartQtyInput struct {
	Qty int `json:"qty" validate:"required"`
}
