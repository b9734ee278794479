package homey

import "errors"

var (
	// ErrNotFound indicates a device, zone or flow was not found
	ErrNotFound = errors.New("not found")

	// ErrNotConnected indicates no Homey connection is configured
	ErrNotConnected = errors.New("homey not connected")

	// ErrUnauthorized indicates the platform rejected the bearer token
	ErrUnauthorized = errors.New("unauthorized")
)
