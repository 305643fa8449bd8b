package usecase

import (
	"errors"
	"fmt"
)

// Business-rule error kinds shared by the job operations. Specific failures
// wrap one of these so handlers can map on the kind while the message keeps
// the field detail.
var (
	ErrJobNotFound            = errors.New("job not found")
	ErrVendorNotFound         = errors.New("vendor not found")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrConcurrentModification = errors.New("job was modified concurrently")
)

var (
	ErrInvalidJobID          = fmt.Errorf("%w: job id", ErrMissingRequiredField)
	ErrMissingCustomerName   = fmt.Errorf("%w: customer name", ErrMissingRequiredField)
	ErrMissingPhone          = fmt.Errorf("%w: phone", ErrMissingRequiredField)
	ErrMissingDeviceType     = fmt.Errorf("%w: device type", ErrMissingRequiredField)
	ErrInvalidServiceType    = fmt.Errorf("%w: service type", ErrMissingRequiredField)
	ErrMissingAddress        = fmt.Errorf("%w: address is required for home-service", ErrMissingRequiredField)
	ErrMissingVisitDate      = fmt.Errorf("%w: visit date is required for home-service", ErrMissingRequiredField)
	ErrVisitDeliveryConflict = fmt.Errorf("%w: home-service uses visit date, not estimated delivery", ErrMissingRequiredField)
	ErrMissingVendorName     = fmt.Errorf("%w: vendor name", ErrMissingRequiredField)
	ErrMissingPaymentMode    = fmt.Errorf("%w: payment mode", ErrMissingRequiredField)
	ErrInvalidPaymentType    = fmt.Errorf("%w: payment type must be full or discount", ErrMissingRequiredField)
	ErrInvalidReturnType     = fmt.Errorf("%w: return type must be without-repair or service-charge", ErrMissingRequiredField)

	// Status edits may not cross the outsourcing boundary: entering needs
	// vendor data, leaving needs a final cost.
	ErrOutsourceViaAssign     = fmt.Errorf("%w: use the outsource operation to assign a vendor", ErrMissingRequiredField)
	ErrLeaveOutsourcedViaRecv = fmt.Errorf("%w: outsourced jobs change status only through receive-back", ErrInvalidTransition)
	ErrNegativeTotal          = fmt.Errorf("%w: total must not be negative", ErrInvalidAmount)
	ErrNegativeAdvance        = fmt.Errorf("%w: advance must not be negative", ErrInvalidAmount)
	ErrNegativeDiscount       = fmt.Errorf("%w: discount must not be negative", ErrInvalidAmount)
	ErrNegativeVendorCost     = fmt.Errorf("%w: vendor cost must not be negative", ErrInvalidAmount)
	ErrNegativeServiceCharge  = fmt.Errorf("%w: service charge must not be negative", ErrInvalidAmount)
)
