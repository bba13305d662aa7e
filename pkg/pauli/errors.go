package pauli

import "errors"

// ErrEmpty is returned when parsing an empty operator string.
var ErrEmpty = errors.New("empty operator")

// ErrInvalidSign is returned when an operator string does not start with '+' or '-'.
var ErrInvalidSign = errors.New("invalid sign character")

// ErrInvalidPauli is returned for a letter outside IXYZ.
var ErrInvalidPauli = errors.New("invalid pauli letter")
