package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrInvalidOwner        = errors.New("invalid owner")
	ErrEmptyDictionaryName = errors.New("dictionary name is required")
	ErrInvalidDictionaryID = errors.New("invalid dictionary id")
	ErrInvalidWordID       = errors.New("invalid word id")
	ErrEmptySourceText     = errors.New("word is required")
	ErrEmptyTargetText     = errors.New("translation is required")
)
