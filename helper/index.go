package helper

import (
	"errors"

	"phone_store/constants"
	"phone_store/database"
	"phone_store/model"

	"gorm.io/gorm"
)

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Preload("Role").Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// IsStaffOrAdmin kiểm tra vai trò của actor cho các thao tác back-office
func IsStaffOrAdmin(userID uint) (bool, error) {
	db := database.DB
	var user model.User
	if err := db.Preload("Role").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role.Name == constants.ROLE_STAFF || user.Role.Name == constants.ROLE_ADMIN, nil
}

func IsAdmin(userID uint) (bool, error) {
	db := database.DB
	var user model.User
	if err := db.Preload("Role").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role.Name == constants.ROLE_ADMIN, nil
}
