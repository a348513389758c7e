package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned (wrapped) for any input that fails its
// precondition. Match with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError names the offending input.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// requirePositive rejects NaN, ±Inf, zero and negative values.
func requirePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &ParameterError{Field: field, Value: v, Reason: "must be greater than zero"}
	}
	return nil
}

func requireRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v < lo || v > hi {
		return &ParameterError{Field: field, Value: v, Reason: fmt.Sprintf("must be within [%g, %g]", lo, hi)}
	}
	return nil
}

// clampEnergy maps negative, NaN and infinite energies to 0.
func clampEnergy(kilotons float64) float64 {
	if math.IsNaN(kilotons) || math.IsInf(kilotons, 0) || kilotons < 0 {
		return 0
	}
	return kilotons
}

// finiteOrZero guards derived quantities.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
