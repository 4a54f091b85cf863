package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested module, parameter or future doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter is returned when a parameter value is malformed or missing
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownParameter is returned when an override names a parameter the module doesn't declare
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrDuplicateModule is returned when a module name is registered twice
	ErrDuplicateModule = errors.New("duplicate module")

	// ErrCyclicDependency is returned when contract futures reference each other
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrInvalidModule is returned when a module definition is malformed
	ErrInvalidModule = errors.New("invalid module")

	// ErrInvalidConfig is returned when the project configuration fails validation
	ErrInvalidConfig = errors.New("invalid config")
)

type InvalidParameterError struct {
	Parameter string
	Value     string
	Reason    string
}

func (e *InvalidParameterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid parameter %s: %s", e.Parameter, e.Reason)
	}
	return fmt.Sprintf("invalid parameter %s=%q: %s", e.Parameter, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

type UnknownParameterError struct {
	Module    string
	Parameter string
	Declared  []string
}

func (e *UnknownParameterError) Error() string {
	if len(e.Declared) == 0 {
		return fmt.Sprintf("module %s has no parameter %q (it declares none)", e.Module, e.Parameter)
	}
	return fmt.Sprintf("module %s has no parameter %q (declared: %s)",
		e.Module, e.Parameter, strings.Join(e.Declared, ", "))
}

func (e *UnknownParameterError) Is(target error) bool {
	return target == ErrUnknownParameter
}

type DuplicateModuleError struct {
	Name string
}

func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("module %s is already registered", e.Name)
}

func (e *DuplicateModuleError) Is(target error) bool {
	return target == ErrDuplicateModule
}

// NotFoundError names what was looked up: a "module", "parameter" or "future".
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type CyclicDependencyError struct {
	Module  string
	Futures []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected in module %s involving: %s",
		e.Module, strings.Join(e.Futures, ", "))
}

func (e *CyclicDependencyError) Is(target error) bool {
	return target == ErrCyclicDependency
}

type InvalidModuleError struct {
	Module string
	Reason string
}

func (e *InvalidModuleError) Error() string {
	if e.Module == "" {
		return fmt.Sprintf("invalid module: %s", e.Reason)
	}
	return fmt.Sprintf("invalid module %s: %s", e.Module, e.Reason)
}

func (e *InvalidModuleError) Is(target error) bool {
	return target == ErrInvalidModule
}
