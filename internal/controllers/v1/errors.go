package v1

import (
	"errors"
)

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errBudgetNameOnly      = errors.New("only the name of a budget can be updated")
	errInvalidFrequency    = errors.New("the frequency must be one of daily, weekly, bi-weekly or monthly")
	errInvalidCurrency     = errors.New("the currency must be a valid ISO 4217 currency code")
	errNegativeAmount      = errors.New("amounts must not be negative")
	errBudgetIDParameter   = errors.New("the budgetId must be set")
	errInvalidPriceType    = errors.New("the price type must be retail or wholesale")
	errRatesUnavailable    = errors.New("exchange rates are currently unavailable")
)
