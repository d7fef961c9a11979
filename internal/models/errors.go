package models

import "fmt"

// MissingMissionError is returned when a raw expedition entry has no mission metadata
type MissingMissionError struct {
	ID int
}

func (e *MissingMissionError) Error() string {
	return fmt.Sprintf("no mission metadata for expedition %d", e.ID)
}

// UnknownItemCodeError is returned for reward item codes outside the known set
type UnknownItemCodeError struct {
	Code int
}

func (e *UnknownItemCodeError) Error() string {
	return fmt.Sprintf("unknown item code: %d", e.Code)
}

// UnknownEnumVariantError is returned when a tagged config carries an unrecognized type
type UnknownEnumVariantError struct {
	Kind  string
	Value string
}

func (e *UnknownEnumVariantError) Error() string {
	return fmt.Sprintf("unexpected %s: %q", e.Kind, e.Value)
}

// InsufficientCompositionError is returned when a fleet size cannot be reached
// because the minimum composition has no wildcard slot to pad
type InsufficientCompositionError struct {
	Target  int
	Minimum int
}

func (e *InsufficientCompositionError) Error() string {
	return fmt.Sprintf("cannot reach %d ships: minimum composition has %d ships and no wildcard slot",
		e.Target, e.Minimum)
}
