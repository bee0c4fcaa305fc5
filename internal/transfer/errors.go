package transfer

import "errors"

var (
	ErrMissingShipmentDate = errors.New("shipment date is required")
	ErrInvalidShipmentDate = errors.New("shipment date must be YYYY-MM-DD")
	ErrMissingParty        = errors.New("transferor and transferee are required")
	ErrMissingSerial       = errors.New("every item needs a serial number")
	ErrDuplicateSerial     = errors.New("serial numbers must be unique within a submission")
	ErrSubmissionNotFound  = errors.New("submission not found")
)
