package core

import "errors"

var (
	ErrParseCmd = errors.New("cannot parse arguments")
	ErrHelp     = errors.New("")

	ErrValidation   = errors.New("username and password are required")
	ErrConflict     = errors.New("username already taken")
	ErrAuth         = errors.New("invalid credentials")
	ErrNotFound     = errors.New("item not found")
	ErrStoreFailure = errors.New("store failure")
)
