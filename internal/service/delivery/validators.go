package delivery

import (
	"strings"

	"quickship/internal/entities"
)

func isValidAddress(address entities.Address) bool {
	return strings.TrimSpace(address.Street) != "" && strings.TrimSpace(address.City) != ""
}

// isValidCustomerPhone телефон клиента: цифры, допускается ведущий «+».
func isValidCustomerPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if phone == "" {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidPriority(priority string) bool {
	switch priority {
	case "low", "medium", "high", "urgent":
		return true
	default:
		return false
	}
}

func isValidStatus(status string) bool {
	switch status {
	case "created", "accepted", "picked_up", "on_the_way", "delivered", "cancelled":
		return true
	default:
		return false
	}
}

func isValidTrackingCode(code string) bool {
	return strings.TrimSpace(code) != ""
}
