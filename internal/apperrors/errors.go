package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnconvertible indicates that a conversion produced no result, either because the
// input text is not a finite number or because a unit or currency code is unknown.
var ErrUnconvertible = errors.New("unconvertible input")
