package model

import "fmt"

// Operator identifies one of the four telecom providers participating in
// number portability. The set is closed: anything else is rejected at parse
// time instead of silently no-op-ing downstream.
type Operator string

const (
	OperatorOrange   Operator = "ORANGE"
	OperatorAirtel   Operator = "AIRTEL"
	OperatorVodacom  Operator = "VODACOM"
	OperatorAfricell Operator = "AFRICELL"
)

// AllOperators returns the four operators in their canonical order.
func AllOperators() []Operator {
	return []Operator{OperatorOrange, OperatorAirtel, OperatorVodacom, OperatorAfricell}
}

// ParseOperator validates and converts a raw string into an Operator.
func ParseOperator(s string) (Operator, error) {
	switch Operator(s) {
	case OperatorOrange, OperatorAirtel, OperatorVodacom, OperatorAfricell:
		return Operator(s), nil
	default:
		return "", fmt.Errorf("unknown operator: %q", s)
	}
}

// Valid reports whether the operator is one of the four known providers.
func (o Operator) Valid() bool {
	switch o {
	case OperatorOrange, OperatorAirtel, OperatorVodacom, OperatorAfricell:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (o Operator) String() string {
	return string(o)
}
