// Package models defines the user record exchanged with the backend and
// kept in the local mirror, plus client-side field validation.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// User is a single record of the managed collection. ID is opaque and
// assigned by the backend on creation; a "local-" prefixed placeholder is
// synthesized when a record is created while the backend is unreachable.
// An empty Phone is a meaningful state, not a missing value.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UnmarshalJSON accepts both string and numeric JSON ids. Backends built on
// dynamic runtimes habitually hand out numeric identifiers; the rest of the
// client treats ids as opaque strings.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode id: %w", err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("decode id: %w", err)
	}
	return n.String(), nil
}

// HasPhone reports whether the record carries a non-blank phone number.
func (u User) HasPhone() bool {
	return strings.TrimSpace(u.Phone) != ""
}

// Fields is the mutable part of a user record, as submitted by create and
// update intents. The id is never part of it.
type Fields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ErrValidation marks client-side validation failures. Operations reject
// invalid fields before any network call is made.
var ErrValidation = errors.New("validation error")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks presence of the name and presence plus basic
// local@domain format of the email. Phone is optional.
func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailPattern.MatchString(f.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrValidation)
	}
	return nil
}
