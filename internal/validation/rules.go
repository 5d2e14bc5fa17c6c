// Package validation holds the pure credential syntax rules applied at
// registration. The functions never perform I/O and never panic; invalid
// input is reported through the Result value.
package validation

import "strings"

// Result carries the outcome of a rule check.
type Result struct {
	Valid  bool
	Reason string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// Username rejects empty values and values containing spaces.
func Username(username string) Result {
	if username == "" {
		return fail("Username is required")
	}
	if strings.Contains(username, " ") {
		return fail("Username cannot contain spaces")
	}
	return ok()
}

// Password accepts 8 to 15 characters with no spaces.
func Password(password string) Result {
	if password == "" {
		return fail("Password is required")
	}
	if len(password) < 8 {
		return fail("Password must be at least 8 characters long")
	}
	if len(password) >= 16 {
		return fail("Password must be less than 16 characters long")
	}
	if strings.Contains(password, " ") {
		return fail("Password cannot contain spaces")
	}
	return ok()
}

// TaxID passes iff the identifier is exactly 15 characters. No charset rule
// is enforced.
func TaxID(id string) bool {
	return len(id) == 15
}
