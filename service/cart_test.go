package service

import (
	"testing"

	"phone_store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemCreatesCartAndTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := CartService{DB: db}
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	cart, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, float64(100), cart.Items[0].UnitPrice)
	assert.Equal(t, float64(200), cart.Items[0].LineAmount)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, float64(200), cart.TotalAmount)
}

func TestAddSameVariantMergesLine(t *testing.T) {
	db := setupTestDB(t)
	svc := CartService{DB: db}
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(user.ID, variant.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Qty)
	assert.Equal(t, 5, cart.TotalItems)
	assert.Equal(t, float64(500), cart.TotalAmount)
}

func TestAddItemStockGuard(t *testing.T) {
	db := setupTestDB(t)
	svc := CartService{DB: db}
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 3)

	_, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)

	// 2 đã có + 2 thêm > 3 tồn kho
	_, err = svc.AddItem(user.ID, variant.ID, 2)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	cart, err := svc.GetByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalItems)
}

func TestAddItemRejectsQtyBelowOne(t *testing.T) {
	db := setupTestDB(t)
	svc := CartService{DB: db}
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := svc.AddItem(user.ID, variant.ID, 0)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUpdateQty(t *testing.T) {
	db := setupTestDB(t)
	svc := CartService{DB: db}
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	cart, err := svc.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateQty(itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Qty)
	assert.Equal(t, float64(500), cart.TotalAmount)

	_, err = svc.UpdateQty(itemID, 0)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.UpdateQty(itemID, 11)
	require.ErrorAs(t, err, &ve)
}

func TestRemoveItemRecomputesTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := CartService{DB: db}
	user := seedUser(t, db, "an@example.com")
	v1 := seedVariant(t, db, "iPhone 15 Pro", 100, 10)
	v2 := seedVariant(t, db, "Galaxy S24", 80, 10)

	_, err := svc.AddItem(user.ID, v1.ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(user.ID, v2.ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	var toRemove model.CartItem
	require.NoError(t, db.Where("cart_id = ? AND variant_id = ?", cart.ID, v1.ID).First(&toRemove).Error)

	cart, err = svc.RemoveItem(toRemove.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.TotalItems)
	assert.Equal(t, float64(80), cart.TotalAmount)
}

func TestUnitPriceSnapshotSurvivesPriceChange(t *testing.T) {
	db := setupTestDB(t)
	svc := CartService{DB: db}
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := svc.AddItem(user.ID, variant.ID, 1)
	require.NoError(t, err)

	// Đổi giá catalog sau khi đã bỏ vào giỏ
	require.NoError(t, db.Model(&model.Variant{}).Where("id = ?", variant.ID).Update("price", 150).Error)

	cart, err := svc.AddItem(user.ID, variant.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(100), cart.Items[0].UnitPrice)
	assert.Equal(t, float64(200), cart.TotalAmount)
}

func TestGetByUserEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	svc := CartService{DB: db}
	user := seedUser(t, db, "an@example.com")

	cart, err := svc.GetByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
}
