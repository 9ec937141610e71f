package service

import (
	"strings"
	"sync"
	"testing"

	"phone_store/constants"
	"phone_store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) OrderService {
	return OrderService{DB: db, Inventory: InventoryService{DB: db}}
}

func validShippingAddress() model.ShippingAddressInput {
	return model.ShippingAddressInput{
		RecipientName: "Nguyễn Văn An",
		PhoneNumber:   "0912345678",
		Line1:         "12 Nguyễn Huệ",
		Ward:          "Phường Bến Nghé",
		District:      "Quận 1",
		Province:      "TP. Hồ Chí Minh",
	}
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := carts.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)

	order, err := orders.PlaceOrder(model.PlaceOrderInput{
		UserID:          user.ID,
		ShippingAddress: validShippingAddress(),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.ORDER_PENDING, order.Status)
	assert.True(t, strings.HasPrefix(order.PublicCode, "ORD-"))
	assert.Len(t, order.PublicCode, 12)
	assert.Equal(t, constants.PAYMENT_COD, order.PaymentMethod)
	assert.Equal(t, float64(200), order.Subtotal)
	assert.Equal(t, order.Subtotal+constants.SHIPPING_FEE, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "iPhone 15 Pro", order.Items[0].ProductNameSnapshot)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, float64(100), order.Items[0].UnitPrice)
	assert.Equal(t, float64(200), order.Items[0].LineTotal)
	assert.Contains(t, order.ShippingAddress, "12 Nguyễn Huệ")

	// Đặt xong giỏ phải rỗng
	cart, err := carts.GetByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, float64(0), cart.TotalAmount)

	// Đặt đơn chưa trừ kho
	var v model.Variant
	require.NoError(t, db.First(&v, variant.ID).Error)
	assert.Equal(t, 10, v.StockQuantity)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")

	_, err := orders.PlaceOrder(model.PlaceOrderInput{
		UserID:          user.ID,
		ShippingAddress: validShippingAddress(),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestPlaceOrderInvalidPaymentMethod(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := carts.AddItem(user.ID, variant.ID, 1)
	require.NoError(t, err)

	_, err = orders.PlaceOrder(model.PlaceOrderInput{
		UserID:          user.ID,
		ShippingAddress: validShippingAddress(),
		PaymentMethod:   "CRYPTO",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 5)

	_, err := carts.AddItem(user.ID, variant.ID, 5)
	require.NoError(t, err)

	// Kho tụt xuống sau khi khách đã bỏ vào giỏ
	require.NoError(t, db.Model(&model.Variant{}).Where("id = ?", variant.ID).Update("stock_quantity", 3).Error)

	_, err = orders.PlaceOrder(model.PlaceOrderInput{
		UserID:          user.ID,
		ShippingAddress: validShippingAddress(),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// Đơn không được tạo, giỏ giữ nguyên
	var n int64
	require.NoError(t, db.Model(&model.Order{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
	cart, err := carts.GetByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func placeTestOrder(t *testing.T, db *gorm.DB, userID uint) *model.Order {
	t.Helper()
	orders := newOrderService(db)
	order, err := orders.PlaceOrder(model.PlaceOrderInput{
		UserID:          userID,
		ShippingAddress: validShippingAddress(),
	})
	require.NoError(t, err)
	return order
}

func TestConfirmDeductsStock(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := carts.AddItem(user.ID, variant.ID, 3)
	require.NoError(t, err)
	order := placeTestOrder(t, db, user.ID)

	confirmed, err := orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{
		Status:  constants.ORDER_CONFIRMED,
		ActorID: staff.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_CONFIRMED, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)
	require.NotNil(t, confirmed.ConfirmedBy)
	assert.Equal(t, staff.ID, *confirmed.ConfirmedBy)

	var v model.Variant
	require.NoError(t, db.First(&v, variant.ID).Error)
	assert.Equal(t, 7, v.StockQuantity)

	var tx model.InventoryTx
	require.NoError(t, db.Where("variant_id = ? AND type = ?", variant.ID, constants.INVENTORY_SALE).First(&tx).Error)
	assert.Equal(t, -3, tx.Quantity)
	assert.Contains(t, tx.Reason, order.PublicCode)
}

func TestConfirmTwiceConcurrentlyDeductsOnce(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := carts.AddItem(user.ID, variant.ID, 3)
	require.NoError(t, err)
	order := placeTestOrder(t, db, user.ID)

	// Hai nhân viên bấm xác nhận cùng một đơn: chỉ một request được ghi,
	// request còn lại phải bị từ chối thay vì trừ kho lần thứ hai
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{
				Status:  constants.ORDER_CONFIRMED,
				ActorID: staff.ID,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var confirmed, rejected int
	for err := range errs {
		if err == nil {
			confirmed++
			continue
		}
		var ite *InvalidTransitionError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, constants.ORDER_CONFIRMED, ite.From)
		rejected++
	}
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 1, rejected)

	var v model.Variant
	require.NoError(t, db.First(&v, variant.ID).Error)
	assert.Equal(t, 7, v.StockQuantity)

	var saleCount int64
	require.NoError(t, db.Model(&model.InventoryTx{}).
		Where("variant_id = ? AND type = ?", variant.ID, constants.INVENTORY_SALE).
		Count(&saleCount).Error)
	assert.Equal(t, int64(1), saleCount)
}

func TestConfirmFailsWhenStockGone(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 3)

	_, err := carts.AddItem(user.ID, variant.ID, 3)
	require.NoError(t, err)
	order := placeTestOrder(t, db, user.ID)

	// Kho bị bán mất trước khi nhân viên kịp xác nhận
	require.NoError(t, db.Model(&model.Variant{}).Where("id = ?", variant.ID).Update("stock_quantity", 1).Error)

	_, err = orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{
		Status:  constants.ORDER_CONFIRMED,
		ActorID: staff.ID,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// Transaction rollback: đơn vẫn PENDING
	var reloaded model.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, constants.ORDER_PENDING, reloaded.Status)
}

func TestCancelAfterConfirmRestoresStock(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := carts.AddItem(user.ID, variant.ID, 4)
	require.NoError(t, err)
	order := placeTestOrder(t, db, user.ID)

	_, err = orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{
		Status: constants.ORDER_CONFIRMED, ActorID: staff.ID,
	})
	require.NoError(t, err)

	cancelled, err := orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{
		Status: constants.ORDER_CANCELLED, ActorID: staff.ID, CancelReason: "Khách đổi ý",
	})
	require.NoError(t, err)
	assert.Equal(t, "Khách đổi ý", cancelled.CancelReason)
	require.NotNil(t, cancelled.CancelledAt)

	var v model.Variant
	require.NoError(t, db.First(&v, variant.ID).Error)
	assert.Equal(t, 10, v.StockQuantity)

	var tx model.InventoryTx
	require.NoError(t, db.Where("variant_id = ? AND type = ?", variant.ID, constants.INVENTORY_RETURN).First(&tx).Error)
	assert.Equal(t, 4, tx.Quantity)
}

func TestCancelPendingDoesNotTouchStock(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := carts.AddItem(user.ID, variant.ID, 4)
	require.NoError(t, err)
	order := placeTestOrder(t, db, user.ID)

	_, err = orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{
		Status: constants.ORDER_CANCELLED, ActorID: staff.ID, CancelReason: "Khách huỷ",
	})
	require.NoError(t, err)

	var v model.Variant
	require.NoError(t, db.First(&v, variant.ID).Error)
	assert.Equal(t, 10, v.StockQuantity)
	var n int64
	require.NoError(t, db.Model(&model.InventoryTx{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestIllegalTransitions(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 100)

	makeOrderWithStatus := func(status string) *model.Order {
		_, err := carts.AddItem(user.ID, variant.ID, 1)
		require.NoError(t, err)
		order := placeTestOrder(t, db, user.ID)
		switch status {
		case constants.ORDER_CONFIRMED:
			_, err = orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{Status: constants.ORDER_CONFIRMED, ActorID: staff.ID})
			require.NoError(t, err)
		case constants.ORDER_COMPLETED:
			_, err = orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{Status: constants.ORDER_CONFIRMED, ActorID: staff.ID})
			require.NoError(t, err)
			_, err = orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{Status: constants.ORDER_COMPLETED, ActorID: staff.ID})
			require.NoError(t, err)
		case constants.ORDER_CANCELLED:
			_, err = orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{Status: constants.ORDER_CANCELLED, ActorID: staff.ID})
			require.NoError(t, err)
		}
		return order
	}

	cases := []struct {
		name string
		from string
		to   string
	}{
		{"bỏ qua bước xác nhận", constants.ORDER_PENDING, constants.ORDER_COMPLETED},
		{"hoàn thành rồi không huỷ được", constants.ORDER_COMPLETED, constants.ORDER_CANCELLED},
		{"hoàn thành rồi không quay lại", constants.ORDER_COMPLETED, constants.ORDER_PENDING},
		{"đã huỷ là trạng thái cuối", constants.ORDER_CANCELLED, constants.ORDER_CONFIRMED},
		{"không quay về chờ xử lý", constants.ORDER_CONFIRMED, constants.ORDER_PENDING},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrderWithStatus(tc.from)
			_, err := orders.UpdateStatus(order.ID, model.UpdateOrderStatusInput{Status: tc.to, ActorID: staff.ID})
			var ite *InvalidTransitionError
			require.ErrorAs(t, err, &ite)
			assert.Equal(t, tc.from, ite.From)
			assert.Equal(t, tc.to, ite.To)
		})
	}
}

func TestSnapshotImmutableAfterRename(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	_ = newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := carts.AddItem(user.ID, variant.ID, 1)
	require.NoError(t, err)
	order := placeTestOrder(t, db, user.ID)

	require.NoError(t, db.Model(&model.Product{}).Where("id = ?", variant.ProductID).Update("name", "iPhone 16 Pro").Error)
	require.NoError(t, db.Model(&model.Variant{}).Where("id = ?", variant.ID).Update("price", 999).Error)

	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "iPhone 15 Pro", items[0].ProductNameSnapshot)
	assert.Equal(t, float64(100), items[0].UnitPrice)
}

func TestStaffNotes(t *testing.T) {
	db := setupTestDB(t)
	carts := CartService{DB: db}
	orders := newOrderService(db)
	user := seedUser(t, db, "an@example.com")
	staff := seedStaff(t, db, "bich@example.com")
	variant := seedVariant(t, db, "iPhone 15 Pro", 100, 10)

	_, err := carts.AddItem(user.ID, variant.ID, 1)
	require.NoError(t, err)
	order := placeTestOrder(t, db, user.ID)

	note, err := orders.AddNote(model.CreateStaffNoteInput{
		OrderID: order.ID, StaffID: staff.ID, Content: "  Khách hẹn giao sau 18h  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Khách hẹn giao sau 18h", note.Content)

	_, err = orders.AddNote(model.CreateStaffNoteInput{OrderID: order.ID, StaffID: staff.ID, Content: "   "})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	edited, err := orders.EditNote(note.ID, model.UpdateStaffNoteInput{ActorID: staff.ID, Content: "Đã gọi lại cho khách"})
	require.NoError(t, err)
	assert.Equal(t, "Đã gọi lại cho khách", edited.Content)

	require.NoError(t, orders.DeleteNote(note.ID))
	err = orders.DeleteNote(note.ID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
