package errs

import "errors"

// Caller-facing categories. Concrete errors are marked with one of these so
// transport layers can map them without knowing every sentinel.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

func Validation(err error) error { return Mark(err, ErrValidation) }
func NotFound(err error) error   { return Mark(err, ErrNotFound) }
func Conflict(err error) error   { return Mark(err, ErrConflict) }

// Kind marks err with a specific sentinel and a category.
func Kind(err, sentinel, category error) error {
	return Mark(Mark(err, sentinel), category)
}

func IsValidation(err error) bool { return Is(err, ErrValidation) }
func IsNotFound(err error) bool   { return Is(err, ErrNotFound) }
func IsConflict(err error) bool   { return Is(err, ErrConflict) }
