// Package repository contains data access logic separated from HTTP
// handlers. This file defines sentinel errors shared across repositories so
// higher layers can distinguish failure scenarios without inspecting driver
// errors. Handlers translate these into stable HTTP status codes: the
// *NotFound values become 404, ErrEmailExists and ErrConflict become 409.
package repository

import "errors"

// ErrUserNotFound is returned when a user id or email resolves to no row.
var ErrUserNotFound = errors.New("user not found")

// ErrTripNotFound is returned when a trip id resolves to no row, either as
// the target of a get/delete or as the parent of a stop or budget.
var ErrTripNotFound = errors.New("trip not found")

// ErrCityNotFound is returned when a referenced city does not exist.
var ErrCityNotFound = errors.New("city not found")

// ErrStopNotFound is returned when a referenced trip stop does not exist.
var ErrStopNotFound = errors.New("trip stop not found")

// ErrActivityNotFound is returned when a referenced activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ErrBudgetNotFound is returned when a trip has no stored budget row yet.
var ErrBudgetNotFound = errors.New("budget not found")

// ErrEmailExists is returned when creating a user whose email is already
// registered.
var ErrEmailExists = errors.New("email already exists")

// ErrConflict is returned when an operation cannot proceed because it would
// violate a uniqueness invariant not covered by a more specific sentinel.
// Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
