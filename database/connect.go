package database

import (
	"fmt"
	"strconv"

	"phone_store/config"
	"phone_store/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Address{},
		&model.Product{},
		&model.Variant{},
		&model.InventoryTx{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.StaffNote{},
	)
	// Mỗi user chỉ một địa chỉ mặc định, chốt luôn ở tầng DB
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_default_address_per_user ON addresses(user_id) WHERE is_default`)
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(DB)
}
