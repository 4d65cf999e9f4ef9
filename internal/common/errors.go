// Package common defines shared sentinel errors used across userdesk
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic internal failures surfaced to callers as opaque errors.
	ErrorInternal = errors.New("internal error")
)
