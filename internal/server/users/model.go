// Package users holds the server-side user model and its repositories.
package users

// User is the stored record. Phone may be empty; it is omitted from JSON so
// clients can tell "no phone" from a blank one.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
