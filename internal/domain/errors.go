package domain

import "fmt"

// OriginIndex marks the implicit start location in errors that would
// otherwise name a stop.
const OriginIndex = -1

// InvalidInputError reports a coordinate that is out of range or not a
// finite number. StopIndex identifies the offending stop in input order,
// or OriginIndex for the start location.
type InvalidInputError struct {
	StopIndex int
	Field     string
	Value     float64
}

func (e *InvalidInputError) Error() string {
	who := fmt.Sprintf("stop %d", e.StopIndex)
	if e.StopIndex == OriginIndex {
		who = "origin"
	}
	return fmt.Sprintf("invalid coordinate for %s: %s=%v out of range", who, e.Field, e.Value)
}

// EmptyAddressError reports a blank or whitespace-only address.
// StopIndex follows the same convention as InvalidInputError.
type EmptyAddressError struct {
	StopIndex int
}

func (e *EmptyAddressError) Error() string {
	if e.StopIndex == OriginIndex {
		return "origin address is empty"
	}
	return fmt.Sprintf("stop %d address is empty", e.StopIndex)
}
