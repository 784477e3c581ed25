package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrInvalidCustomerPhone  = errors.New("invalid customer phone")
	ErrInvalidWeight         = errors.New("invalid package weight")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTrackingCode   = errors.New("invalid tracking code")
	ErrOwnerRoleRequired     = errors.New("actor role cannot create deliveries")

	ErrDeliveryNotFound = errors.New("delivery not found")

	// ErrDeliveryBusy не удалось взять per-delivery блокировку за lock_timeout,
	// клиент может повторить запрос.
	ErrDeliveryBusy = errors.New("delivery is busy, retry later")
)
