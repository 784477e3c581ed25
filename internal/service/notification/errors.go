package notification

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined delivery status in event")
	ErrStatusMismatch  = errors.New("event status does not match current delivery status")
)
