package model

import "time"

// Order bản chụp bất biến của giỏ hàng tại thời điểm checkout.
// ShippingAddress là chuỗi đã format, cố ý không tham chiếu Address
// để đơn hàng không đổi khi khách sửa/xoá sổ địa chỉ.
type Order struct {
	DTO
	PublicCode      string      `gorm:"unique;size:20" json:"publicCode"` // ORD-XXXXXXXX
	UserID          uint        `gorm:"index;not null" json:"userId"`
	User            User        `json:"user,omitempty"`
	Status          string      `gorm:"size:20;not null" json:"status"` // PENDING, CONFIRMED, COMPLETED, CANCELLED
	Subtotal        float64     `gorm:"not null" json:"subtotal"`
	ShippingFee     float64     `gorm:"not null" json:"shippingFee"`
	TotalAmount     float64     `gorm:"not null" json:"totalAmount"`
	PaymentMethod   string      `gorm:"size:20" json:"paymentMethod"` // COD, BANK_TRANSFER
	ShippingAddress string      `gorm:"not null" json:"shippingAddress"`
	ConfirmedAt     *time.Time  `json:"confirmedAt,omitempty"`
	ConfirmedBy     *uint       `json:"confirmedBy,omitempty"`
	CompletedAt     *time.Time  `json:"completedAt,omitempty"`
	CompletedBy     *uint       `json:"completedBy,omitempty"`
	CancelledAt     *time.Time  `json:"cancelledAt,omitempty"`
	CancelledBy     *uint       `json:"cancelledBy,omitempty"`
	CancelReason    string      `json:"cancelReason,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Notes           []StaffNote `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
}

// OrderItem đóng băng tên sản phẩm/phiên bản và giá lúc đặt,
// không bị ảnh hưởng khi catalog đổi tên hay đổi giá về sau
type OrderItem struct {
	DTO
	OrderID             uint    `gorm:"index;not null" json:"orderId"`
	VariantID           uint    `gorm:"index" json:"variantId"`
	ProductNameSnapshot string  `gorm:"not null" json:"productNameSnapshot"`
	VariantNameSnapshot string  `gorm:"not null" json:"variantNameSnapshot"`
	Quantity            int     `gorm:"not null" json:"quantity"`
	UnitPrice           float64 `gorm:"not null" json:"unitPrice"`
	LineTotal           float64 `gorm:"not null" json:"lineTotal"`
}

// StaffNote ghi chú nội bộ trên đơn hàng, sửa/xoá tự do (khác OrderItem)
type StaffNote struct {
	DTO
	OrderID uint   `gorm:"index;not null" json:"orderId"`
	StaffID uint   `gorm:"not null" json:"staffId"`
	Staff   User   `json:"staff,omitempty"`
	Content string `gorm:"not null" json:"content"`
}

type PlaceOrderInput struct {
	UserID          uint                 `json:"userId" validate:"required"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress" validate:"required"`
	PaymentMethod   string               `json:"paymentMethod"`
}

type UpdateOrderStatusInput struct {
	Status       string `json:"status" validate:"required"`
	ActorID      uint   `json:"actorId" validate:"required"`
	CancelReason string `json:"cancelReason"`
}

type CreateStaffNoteInput struct {
	OrderID uint   `json:"orderId" validate:"required"`
	StaffID uint   `json:"staffId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateStaffNoteInput struct {
	ActorID uint   `json:"actorId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type DeleteStaffNoteInput struct {
	ActorID uint `json:"actorId" validate:"required"`
}

type FilterOrderInput struct {
	Status string `query:"status"`
	Limit  *int   `query:"limit"`
	Page   *int   `query:"page"`
}
