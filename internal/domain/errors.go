package domain

import "errors"

var (
	ErrParcelNotFound = errors.New("parcel not found")
	ErrInvalidParcel  = errors.New("invalid parcel")
	ErrInvalidPayload = errors.New("invalid payload encoding")
)
