package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid planning input")
	ErrInvalidBudget   = errors.New("budget must be greater than zero")
	ErrNoSupplyFound   = errors.New("no qualifying candidates found")
	ErrExternalService = errors.New("external service failure")
	ErrAssemblyFailure = errors.New("itinerary assembly failure")
)
