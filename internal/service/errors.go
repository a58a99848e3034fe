package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooShort    = errors.New("password is shorter than 5 characters")
	ErrWrongPassword       = errors.New("wrong password")
)
