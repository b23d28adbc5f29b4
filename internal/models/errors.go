package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrBudgetNameEmpty  = errors.New("the budget name must not be empty")
	ErrBudgetReference  = errors.New("the referenced budget does not exist")
)
