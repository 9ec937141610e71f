package model

import "strings"

// Address sổ địa chỉ giao hàng. Mỗi user chỉ có đúng một địa chỉ mặc định
// (ràng buộc bằng partial unique index tạo trong database.ConnectDB).
type Address struct {
	DTO
	UserID        uint   `gorm:"index;not null" json:"userId"`
	RecipientName string `gorm:"not null" json:"recipientName"`
	PhoneNumber   string `gorm:"size:10;not null" json:"phoneNumber"`
	Line1         string `gorm:"not null" json:"line1"` // số nhà + tên đường
	Ward          string `gorm:"not null" json:"ward"`
	District      string `gorm:"not null" json:"district"`
	Province      string `gorm:"not null" json:"province"`
	IsDefault     bool   `gorm:"not null;default:false" json:"isDefault"`
}

type CreateAddressInput struct {
	UserID        uint   `json:"userId" validate:"required"`
	RecipientName string `json:"recipientName" validate:"required"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	Line1         string `json:"line1" validate:"required"`
	Ward          string `json:"ward" validate:"required"`
	District      string `json:"district" validate:"required"`
	Province      string `json:"province" validate:"required"`
	IsDefault     bool   `json:"isDefault"`
}

type UpdateAddressInput struct {
	RecipientName *string `json:"recipientName"`
	PhoneNumber   *string `json:"phoneNumber"`
	Line1         *string `json:"line1"`
	Ward          *string `json:"ward"`
	District      *string `json:"district"`
	Province      *string `json:"province"`
	IsDefault     *bool   `json:"isDefault"`
}

// ShippingAddressInput địa chỉ giao hàng khách chọn lúc checkout,
// được đóng băng thành chuỗi trên đơn hàng
type ShippingAddressInput struct {
	RecipientName string `json:"recipientName" validate:"required"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	Line1         string `json:"line1" validate:"required"`
	Ward          string `json:"ward" validate:"required"`
	District      string `json:"district" validate:"required"`
	Province      string `json:"province" validate:"required"`
}

// Format ghép địa chỉ thành chuỗi hiển thị, lưu cứng vào đơn hàng
// để đơn không bị ảnh hưởng khi sổ địa chỉ thay đổi về sau
func (a ShippingAddressInput) Format() string {
	return strings.Join([]string{
		strings.TrimSpace(a.RecipientName),
		strings.TrimSpace(a.PhoneNumber),
		strings.TrimSpace(a.Line1),
		strings.TrimSpace(a.Ward),
		strings.TrimSpace(a.District),
		strings.TrimSpace(a.Province),
	}, ", ")
}
