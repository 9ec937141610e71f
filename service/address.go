package service

import (
	"errors"
	"strings"

	"phone_store/model"
	"phone_store/utils"

	"gorm.io/gorm"
)

// AddressService giữ bất biến "mỗi user đúng một địa chỉ mặc định".
// Mọi thao tác chạm vào is_default đều gói trong một transaction; tầng DB
// còn có partial unique index (user_id WHERE is_default) chặn race giữa
// hai request set mặc định đồng thời.
type AddressService struct {
	DB *gorm.DB
}

func validateAddressFields(recipientName, phoneNumber, line1, ward, district, province string) error {
	if strings.TrimSpace(recipientName) == "" {
		return &ValidationError{Message: "Tên người nhận không được để trống"}
	}
	if !utils.IsValidPhoneNumber(strings.TrimSpace(phoneNumber)) {
		return &ValidationError{Message: "Số điện thoại không hợp lệ (10 số, bắt đầu bằng 0)"}
	}
	if strings.TrimSpace(line1) == "" {
		return &ValidationError{Message: "Địa chỉ (số nhà, tên đường) không được để trống"}
	}
	if strings.TrimSpace(ward) == "" {
		return &ValidationError{Message: "Phường/Xã không được để trống"}
	}
	if strings.TrimSpace(district) == "" {
		return &ValidationError{Message: "Quận/Huyện không được để trống"}
	}
	if strings.TrimSpace(province) == "" {
		return &ValidationError{Message: "Tỉnh/Thành phố không được để trống"}
	}
	return nil
}

func (s AddressService) Create(input model.CreateAddressInput) (*model.Address, error) {
	if err := validateAddressFields(input.RecipientName, input.PhoneNumber, input.Line1, input.Ward, input.District, input.Province); err != nil {
		return nil, err
	}

	var user model.User
	if err := s.DB.First(&user, input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Người dùng"}
		}
		return nil, err
	}

	address := model.Address{
		UserID:        input.UserID,
		RecipientName: strings.TrimSpace(input.RecipientName),
		PhoneNumber:   strings.TrimSpace(input.PhoneNumber),
		Line1:         strings.TrimSpace(input.Line1),
		Ward:          strings.TrimSpace(input.Ward),
		District:      strings.TrimSpace(input.District),
		Province:      strings.TrimSpace(input.Province),
		IsDefault:     input.IsDefault,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Address{}).Where("user_id = ?", input.UserID).Count(&count).Error; err != nil {
			return err
		}
		// Địa chỉ đầu tiên luôn là mặc định
		if count == 0 {
			address.IsDefault = true
		}
		if address.IsDefault {
			if err := tx.Model(&model.Address{}).
				Where("user_id = ?", input.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (s AddressService) Update(addressID uint, input model.UpdateAddressInput) (*model.Address, error) {
	var address model.Address
	if err := s.DB.First(&address, addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Địa chỉ"}
		}
		return nil, err
	}

	if input.RecipientName != nil {
		address.RecipientName = strings.TrimSpace(*input.RecipientName)
	}
	if input.PhoneNumber != nil {
		address.PhoneNumber = strings.TrimSpace(*input.PhoneNumber)
	}
	if input.Line1 != nil {
		address.Line1 = strings.TrimSpace(*input.Line1)
	}
	if input.Ward != nil {
		address.Ward = strings.TrimSpace(*input.Ward)
	}
	if input.District != nil {
		address.District = strings.TrimSpace(*input.District)
	}
	if input.Province != nil {
		address.Province = strings.TrimSpace(*input.Province)
	}
	if err := validateAddressFields(address.RecipientName, address.PhoneNumber, address.Line1, address.Ward, address.District, address.Province); err != nil {
		return nil, err
	}

	// Không cho bỏ cờ mặc định trực tiếp: user phải chọn địa chỉ mặc định khác,
	// nếu không sẽ có khoảnh khắc không địa chỉ nào là mặc định
	if input.IsDefault != nil && !*input.IsDefault && address.IsDefault {
		return nil, &ConflictError{Message: "Không thể bỏ địa chỉ mặc định, hãy đặt địa chỉ khác làm mặc định"}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if input.IsDefault != nil && *input.IsDefault {
			if err := tx.Model(&model.Address{}).
				Where("user_id = ? AND id <> ?", address.UserID, address.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
			address.IsDefault = true
		}
		return tx.Save(&address).Error
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (s AddressService) Delete(addressID uint) error {
	var address model.Address
	if err := s.DB.First(&address, addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Địa chỉ"}
		}
		return err
	}

	var count int64
	if err := s.DB.Model(&model.Address{}).Where("user_id = ?", address.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count <= 1 {
		return &ConflictError{Message: "Không thể xoá địa chỉ duy nhất, hãy thêm địa chỉ khác trước"}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Address{}, address.ID).Error; err != nil {
			return err
		}
		// Xoá địa chỉ mặc định → đôn địa chỉ còn lại đầu tiên lên thay,
		// cùng transaction nên không có khoảnh khắc user thiếu địa chỉ mặc định
		if address.IsDefault {
			var next model.Address
			if err := tx.Where("user_id = ?", address.UserID).Order("id asc").First(&next).Error; err != nil {
				return err
			}
			if err := tx.Model(&next).Update("is_default", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s AddressService) SetDefault(addressID uint) (*model.Address, error) {
	var address model.Address
	if err := s.DB.First(&address, addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Địa chỉ"}
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Address{}).
			Where("user_id = ? AND id <> ?", address.UserID, address.ID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&address).Update("is_default", true).Error
	})
	if err != nil {
		return nil, err
	}
	address.IsDefault = true
	return &address, nil
}
