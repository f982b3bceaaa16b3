package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Flight-path-related errors

type FlightPathError struct {
	*DomainError
}

func NewFlightPathError(message string) *FlightPathError {
	return &FlightPathError{DomainError: &DomainError{Message: message}}
}

type ManeuverIndexError struct {
	*FlightPathError
	Index int
	Count int
}

func NewManeuverIndexError(index, count int) *ManeuverIndexError {
	return &ManeuverIndexError{
		FlightPathError: NewFlightPathError(
			fmt.Sprintf("maneuver index %d out of range (path has %d maneuvers)", index, count),
		),
		Index: index,
		Count: count,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
