package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidGraph      = errors.New("invalid seed graph")
	ErrCycleFound        = errors.New("dependency cycle detected")
	ErrUnknownDependency = errors.New("unknown dependency")

	// ErrUnknownUnit is returned by RunOne for a name that is not registered.
	ErrUnknownUnit = errors.New("unknown seed unit")

	// ErrUndeclaredDependency is returned when a unit reads the records of a
	// unit it does not list in Requires.
	ErrUndeclaredDependency = errors.New("undeclared dependency")
)

// GraphError wraps registry validation failures.
type GraphError struct {
	Kind error
	Msg  string
}

func (e *GraphError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *GraphError) Unwrap() error { return e.Kind }

func invalidf(format string, args ...any) error {
	return &GraphError{Kind: ErrInvalidGraph, Msg: fmt.Sprintf(format, args...)}
}

func unknownDependency(unit, dep string) error {
	return &GraphError{Kind: ErrUnknownDependency, Msg: fmt.Sprintf("%q requires %q", unit, dep)}
}

func cycleError(path []string) error {
	msg := "cycle"
	if len(path) > 0 {
		msg = "cycle: " + strings.Join(path, " -> ")
	}
	return &GraphError{Kind: ErrCycleFound, Msg: msg}
}

// UnknownUnitError reports a unit name that is not registered, together
// with the names that are.
type UnknownUnitError struct {
	Name  string
	Valid []string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%s %q (valid: %s)", ErrUnknownUnit, e.Name, strings.Join(e.Valid, ", "))
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }
