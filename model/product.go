package model

type Product struct {
	DTO
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"unique;size:255" json:"slug"`
	Brand       string    `json:"brand"`
	Description string    `json:"description"`
	Status      string    `gorm:"size:20;default:ACTIVE" json:"status"` // ACTIVE, INACTIVE, ARCHIVED
	ImageUrl    string    `json:"imageUrl"`
	Variants    []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

// Variant một cấu hình bán được của sản phẩm (màu / dung lượng / giá).
// StockQuantity chỉ được thay đổi qua service.InventoryService.
type Variant struct {
	DTO
	ProductID     uint    `gorm:"index;not null" json:"productId"`
	Product       Product `json:"-"`
	Name          string  `gorm:"not null" json:"name"` // ví dụ: "256GB - Titanium Black"
	Color         string  `json:"color"`
	Capacity      string  `json:"capacity"`
	Price         float64 `gorm:"not null" json:"price"`
	StockQuantity int     `gorm:"not null;default:0" json:"stockQuantity"`
	Status        string  `gorm:"size:20;default:IN_STOCK" json:"status"` // IN_STOCK, OUT_OF_STOCK, DISCONTINUED
	ImageUrl      string  `json:"imageUrl"`
}

type CreateVariantInput struct {
	Name          string  `json:"name" validate:"required"`
	Color         string  `json:"color"`
	Capacity      string  `json:"capacity"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	ImageUrl      string  `json:"imageUrl"`
}

type CreateProductInput struct {
	Name        string               `json:"name" validate:"required"`
	Brand       string               `json:"brand" validate:"required"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	ImageUrl    string               `json:"imageUrl"`
	ActorID     uint                 `json:"actorId" validate:"required"`
	Variants    []CreateVariantInput `json:"variants" validate:"required,min=1,dive"`
}

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Brand       *string `json:"brand"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	ImageUrl    *string `json:"imageUrl"`
}

// UpdateVariantInput StockQuantity đi đường riêng qua InventoryService
// để luôn có bản ghi sổ kho kèm theo
type UpdateVariantInput struct {
	Name          *string  `json:"name"`
	Color         *string  `json:"color"`
	Capacity      *string  `json:"capacity"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	Status        *string  `json:"status"`
	ImageUrl      *string  `json:"imageUrl"`
	StockQuantity *int     `json:"stockQuantity" validate:"omitempty,gte=0"`
	ActorID       uint     `json:"actorId"`
}
