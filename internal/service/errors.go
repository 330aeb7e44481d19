package service

import "errors"

var (
	ErrNotFound          = errors.New("qr code not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAlreadyRegistered = errors.New("qr code already registered")
	ErrNotRegistered     = errors.New("qr code not registered")
	ErrUnauthorized      = errors.New("password does not match")
	ErrShortIDExhausted  = errors.New("could not allocate a unique short id")
)
