package service

import (
	"testing"

	"phone_store/constants"
	"phone_store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustRestockAndSale(t *testing.T) {
	db := setupTestDB(t)
	svc := InventoryService{DB: db}
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 0)

	v, err := svc.Adjust(variant.ID, 10, constants.INVENTORY_RESTOCK, "Nhập lô hàng mới", staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, v.StockQuantity)
	assert.Equal(t, constants.VARIANT_IN_STOCK, v.Status)

	v, err = svc.Adjust(variant.ID, -4, constants.INVENTORY_SALE, "Bán lẻ tại quầy", staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, v.StockQuantity)

	var txs []model.InventoryTx
	require.NoError(t, db.Where("variant_id = ?", variant.ID).Order("id asc").Find(&txs).Error)
	require.Len(t, txs, 2)
	assert.Equal(t, constants.INVENTORY_RESTOCK, txs[0].Type)
	assert.Equal(t, 10, txs[0].Quantity)
	assert.Equal(t, constants.INVENTORY_SALE, txs[1].Type)
	assert.Equal(t, -4, txs[1].Quantity)
}

func TestAdjustRejectsNegativeResult(t *testing.T) {
	db := setupTestDB(t)
	svc := InventoryService{DB: db}
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 3)

	_, err := svc.Adjust(variant.ID, -5, constants.INVENTORY_SALE, "Bán lẻ tại quầy", staff.ID)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// Từ chối thì counter và sổ kho đều không đổi
	var v model.Variant
	require.NoError(t, db.First(&v, variant.ID).Error)
	assert.Equal(t, 3, v.StockQuantity)
	var n int64
	require.NoError(t, db.Model(&model.InventoryTx{}).Where("variant_id = ?", variant.ID).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestAdjustRejectsUnknownType(t *testing.T) {
	db := setupTestDB(t)
	svc := InventoryService{DB: db}
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 3)

	_, err := svc.Adjust(variant.ID, 1, "GIFT", "", staff.ID)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestStatusFlipsWithStock(t *testing.T) {
	db := setupTestDB(t)
	svc := InventoryService{DB: db}
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 2)

	v, err := svc.Adjust(variant.ID, -2, constants.INVENTORY_SALE, "Bán hết", staff.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.VARIANT_OUT_OF_STOCK, v.Status)

	v, err = svc.Adjust(variant.ID, 5, constants.INVENTORY_RESTOCK, "Nhập thêm", staff.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.VARIANT_IN_STOCK, v.Status)
}

func TestSetStockWritesAdjustmentRow(t *testing.T) {
	db := setupTestDB(t)
	svc := InventoryService{DB: db}
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 7)

	v, err := svc.SetStock(variant.ID, 20, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, v.StockQuantity)

	var tx model.InventoryTx
	require.NoError(t, db.Where("variant_id = ?", variant.ID).First(&tx).Error)
	assert.Equal(t, constants.INVENTORY_ADJUSTMENT, tx.Type)
	assert.Equal(t, 13, tx.Quantity)
	assert.Equal(t, staff.ID, tx.CreatedBy)

	// Set đúng giá trị hiện tại thì không sinh thêm dòng sổ
	_, err = svc.SetStock(variant.ID, 20, staff.ID)
	require.NoError(t, err)
	var n int64
	require.NoError(t, db.Model(&model.InventoryTx{}).Where("variant_id = ?", variant.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	_, err = svc.SetStock(variant.ID, -1, staff.ID)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestReconcile(t *testing.T) {
	db := setupTestDB(t)
	svc := InventoryService{DB: db}
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 0)

	_, err := svc.Adjust(variant.ID, 10, constants.INVENTORY_RESTOCK, "Nhập lô hàng mới", staff.ID)
	require.NoError(t, err)
	_, err = svc.Adjust(variant.ID, -3, constants.INVENTORY_SALE, "Bán lẻ tại quầy", staff.ID)
	require.NoError(t, err)

	drifts, err := svc.Reconcile()
	require.NoError(t, err)
	assert.Empty(t, drifts)

	// Sửa counter thẳng tay, không qua service -> phải lộ ra khi đối soát
	require.NoError(t, db.Model(&model.Variant{}).Where("id = ?", variant.ID).Update("stock_quantity", 99).Error)

	drifts, err = svc.Reconcile()
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, variant.ID, drifts[0].VariantID)
	assert.EqualValues(t, 7, drifts[0].LedgerTotal)
	assert.EqualValues(t, 99, drifts[0].StockQuantity)
}
