package model

// Role dữ liệu tham chiếu tĩnh, seed lúc khởi động
type Role struct {
	DTO
	Name        string   `gorm:"unique;size:20" json:"name"`
	Permissions []string `gorm:"serializer:json" json:"permissions"`
	Description string   `json:"description"`
}

type User struct {
	DTO
	FullName  string    `gorm:"not null" json:"fullName"`
	Email     string    `gorm:"unique;not null" json:"email"`
	RoleID    uint      `json:"roleId"`
	Role      Role      `json:"role"`
	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
	Cart      *Cart     `gorm:"foreignKey:UserID" json:"cart,omitempty"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}

type RegisterUserInput struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginInput đăng nhập chỉ tra cứu theo email (+ role nếu có), không có mật khẩu
type LoginInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

type UpdateUserRoleInput struct {
	Role    string `json:"role" validate:"required"`
	ActorID uint   `json:"actorId" validate:"required"`
}
