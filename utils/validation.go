package utils

import "regexp"

var phoneRegex = regexp.MustCompile(`^0\d{9}$`)

// IsValidPhoneNumber số di động Việt Nam: 10 số, bắt đầu bằng 0
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, v := range constantValues {
		if v == value {
			return true
		}
	}
	return false
}
