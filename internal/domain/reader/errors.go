package reader

import (
	apperrors "github.com/adilzhan/libra/pkg/errors"
)

var (
	// ErrReaderNotFound: the referenced reader does not exist.
	ErrReaderNotFound = apperrors.New(apperrors.ErrCodeReaderNotFound, "reader not found")

	// ErrEmailDuplicate: another reader already uses this email.
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "email already in use")

	// ErrInvalidName: name missing.
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "name is required")

	// ErrInvalidEmail: email missing or malformed.
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid email address")
)
