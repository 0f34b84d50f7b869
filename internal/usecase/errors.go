package usecase

import "errors"

// Domain errors. Handlers dispatch on these with errors.Is; anything else
// coming out of a repository is a storage failure and maps to a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrInsufficientCopies = errors.New("no copies available to borrow")
	ErrInvalidDueDate     = errors.New("due date cannot be before the borrowed date")
	ErrAlreadyReturned    = errors.New("borrowing is already returned")
)
