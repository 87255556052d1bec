package model

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already registered")

	ErrPaletteNotFound = errors.New("palette not found")
	ErrGroupNotFound   = errors.New("group not found")
)
