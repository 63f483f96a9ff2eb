package repo

import "fmt"

// EmptyNameError rejects group creation/rename with a blank name.
type EmptyNameError struct{}

func (EmptyNameError) Error() string { return "group name must not be empty" }

// DefaultGroupError rejects rename/delete of the implicit default bucket.
type DefaultGroupError struct{ Op string }

func (e DefaultGroupError) Error() string {
	return fmt.Sprintf("cannot %s the default group", e.Op)
}
