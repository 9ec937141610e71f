package service

import (
	"fmt"
	"testing"

	"phone_store/constants"
	"phone_store/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB tạo DB sqlite in-memory với schema giống production,
// gồm cả partial unique index bảo vệ địa chỉ mặc định
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Role{}, &model.User{}, &model.Address{},
		&model.Product{}, &model.Variant{}, &model.InventoryTx{},
		&model.Cart{}, &model.CartItem{},
		&model.Order{}, &model.OrderItem{}, &model.StaffNote{},
	))
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_default_address_per_user ON addresses(user_id) WHERE is_default`,
	).Error)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	var role model.Role
	require.NoError(t, db.Where(model.Role{Name: constants.ROLE_CUSTOMER}).FirstOrCreate(&role).Error)
	user := model.User{FullName: "Nguyễn Văn An", Email: email, RoleID: role.ID}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedStaff(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	var role model.Role
	require.NoError(t, db.Where(model.Role{Name: constants.ROLE_STAFF}).FirstOrCreate(&role).Error)
	user := model.User{FullName: "Trần Thị Bích", Email: email, RoleID: role.ID}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedVariant(t *testing.T, db *gorm.DB, productName string, price float64, stock int) model.Variant {
	t.Helper()
	product := model.Product{
		Name:   productName,
		Slug:   fmt.Sprintf("%s-%d", productName, stock),
		Brand:  "Apple",
		Status: constants.PRODUCT_ACTIVE,
	}
	require.NoError(t, db.Create(&product).Error)
	variant := model.Variant{
		ProductID:     product.ID,
		Name:          "256GB - Titan Đen",
		Color:         "Titan Đen",
		Capacity:      "256GB",
		Price:         price,
		StockQuantity: stock,
		Status:        constants.VARIANT_IN_STOCK,
	}
	require.NoError(t, db.Create(&variant).Error)
	return variant
}

func validAddressInput(userID uint) model.CreateAddressInput {
	return model.CreateAddressInput{
		UserID:        userID,
		RecipientName: "Nguyễn Văn An",
		PhoneNumber:   "0912345678",
		Line1:         "12 Nguyễn Huệ",
		Ward:          "Phường Bến Nghé",
		District:      "Quận 1",
		Province:      "TP. Hồ Chí Minh",
	}
}
