package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidPin      = Error("invalid pin")
	ErrInvalidPinMode  = Error("invalid pin mode")
	ErrInvalidDebounce = Error("invalid debounce interval")
)
