package service

import (
	"errors"
	"testing"

	"phone_store/model"
	"phone_store/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDefaults(t *testing.T, svc AddressService, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, svc.DB.Model(&model.Address{}).
		Where("user_id = ? AND is_default", userID).Count(&n).Error)
	return n
}

func TestCreateFirstAddressForcesDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	input := validAddressInput(user.ID)
	input.IsDefault = false

	addr, err := svc.Create(input)
	require.NoError(t, err)
	assert.True(t, addr.IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, svc, user.ID))
}

func TestCreateDefaultUnsetsPrevious(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	first, err := svc.Create(validAddressInput(user.ID))
	require.NoError(t, err)
	require.True(t, first.IsDefault)

	input := validAddressInput(user.ID)
	input.Line1 = "34 Lê Lợi"
	input.IsDefault = true
	second, err := svc.Create(input)
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	var reloaded model.Address
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.False(t, reloaded.IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, svc, user.ID))
}

func TestCreateNonDefaultKeepsExistingDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	first, err := svc.Create(validAddressInput(user.ID))
	require.NoError(t, err)

	input := validAddressInput(user.ID)
	input.Line1 = "34 Lê Lợi"
	second, err := svc.Create(input)
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	var reloaded model.Address
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.True(t, reloaded.IsDefault)
}

func TestSetDefaultSwitchesAndIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	first, err := svc.Create(validAddressInput(user.ID))
	require.NoError(t, err)
	input := validAddressInput(user.ID)
	input.Line1 = "34 Lê Lợi"
	second, err := svc.Create(input)
	require.NoError(t, err)

	_, err = svc.SetDefault(second.ID)
	require.NoError(t, err)
	// Gọi lại lần nữa không được phép làm hỏng bất biến
	_, err = svc.SetDefault(second.ID)
	require.NoError(t, err)

	var a, b model.Address
	require.NoError(t, db.First(&a, first.ID).Error)
	require.NoError(t, db.First(&b, second.ID).Error)
	assert.False(t, a.IsDefault)
	assert.True(t, b.IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, svc, user.ID))
}

func TestDeleteOnlyAddressRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	addr, err := svc.Create(validAddressInput(user.ID))
	require.NoError(t, err)

	err = svc.Delete(addr.ID)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	var n int64
	require.NoError(t, db.Model(&model.Address{}).Where("user_id = ?", user.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestDeleteDefaultPromotesRemaining(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	first, err := svc.Create(validAddressInput(user.ID))
	require.NoError(t, err)
	input := validAddressInput(user.ID)
	input.Line1 = "34 Lê Lợi"
	second, err := svc.Create(input)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(first.ID))

	var promoted model.Address
	require.NoError(t, db.First(&promoted, second.ID).Error)
	assert.True(t, promoted.IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, svc, user.ID))
}

func TestDeleteNonDefaultKeepsDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	first, err := svc.Create(validAddressInput(user.ID))
	require.NoError(t, err)
	input := validAddressInput(user.ID)
	input.Line1 = "34 Lê Lợi"
	second, err := svc.Create(input)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(second.ID))

	var reloaded model.Address
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.True(t, reloaded.IsDefault)
}

func TestUpdateRejectsUnsettingDefaultDirectly(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	addr, err := svc.Create(validAddressInput(user.ID))
	require.NoError(t, err)

	_, err = svc.Update(addr.ID, model.UpdateAddressInput{IsDefault: utils.Ptr(false)})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpdateSetDefaultUnsetsOthers(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	first, err := svc.Create(validAddressInput(user.ID))
	require.NoError(t, err)
	input := validAddressInput(user.ID)
	input.Line1 = "34 Lê Lợi"
	second, err := svc.Create(input)
	require.NoError(t, err)

	updated, err := svc.Update(second.ID, model.UpdateAddressInput{IsDefault: utils.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	var reloaded model.Address
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.False(t, reloaded.IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, svc, user.ID))
}

func TestCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}
	user := seedUser(t, db, "an@example.com")

	cases := []struct {
		name   string
		mutate func(*model.CreateAddressInput)
	}{
		{"thiếu tên người nhận", func(i *model.CreateAddressInput) { i.RecipientName = "   " }},
		{"số điện thoại sai định dạng", func(i *model.CreateAddressInput) { i.PhoneNumber = "12345" }},
		{"số điện thoại không bắt đầu bằng 0", func(i *model.CreateAddressInput) { i.PhoneNumber = "1912345678" }},
		{"thiếu địa chỉ", func(i *model.CreateAddressInput) { i.Line1 = "" }},
		{"thiếu phường xã", func(i *model.CreateAddressInput) { i.Ward = "" }},
		{"thiếu tỉnh thành", func(i *model.CreateAddressInput) { i.Province = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validAddressInput(user.ID)
			tc.mutate(&input)
			_, err := svc.Create(input)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestCreateForUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := AddressService{DB: db}

	_, err := svc.Create(validAddressInput(999))
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
}
