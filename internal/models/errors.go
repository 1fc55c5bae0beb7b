package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrBudgetTotalNegative = errors.New("the total amount of a budget must not be negative")
	ErrBudgetPeriodInvalid = errors.New("the start date of a budget must not be after its end date")
)

var (
	ErrAllocationCategoryEmpty     = errors.New("the category of an allocation must not be empty")
	ErrAllocationAmountNegative    = errors.New("allocated amounts must not be negative")
	ErrAllocationCategoryNotUnique = errors.New("the category of an allocation must be unique for the budget")
)

var (
	ErrTransactionAmountNegative = errors.New("the transaction amount must not be negative, use the type to set the direction")
	ErrTransactionTypeInvalid    = errors.New("the transaction type must be one of income, expense, transfer")
	ErrTransactionStatusInvalid  = errors.New("the transaction status must be one of pending, completed, cancelled")
)
