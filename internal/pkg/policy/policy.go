// Package policy holds the single authorization predicate used by every mutation.
package policy

import (
	"tourism-service/internal/pkg/errors"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Actor is the caller of an operation. The zero value is anonymous.
type Actor struct {
	ID    string
	Email string
	Role  string
}

func (a Actor) IsAnonymous() bool {
	return a.ID == ""
}

func (a Actor) IsAdmin() bool {
	return !a.IsAnonymous() && a.Role == RoleAdmin
}

// Resource is anything with an owner: hotels, packages, and schedules through their parent.
type Resource struct {
	Kind    string
	OwnerID string
}

// Allowed reports whether actor may mutate resource.
func Allowed(actor Actor, resource Resource) bool {
	if actor.IsAnonymous() {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	return resource.OwnerID != "" && resource.OwnerID == actor.ID
}

// Authorize returns a forbidden error when Allowed is false.
func Authorize(actor Actor, resource Resource) error {
	if actor.IsAnonymous() {
		return errors.UnauthorizedError("authentication required")
	}
	if !Allowed(actor, resource) {
		return errors.Forbidden("you can only modify your own " + resource.Kind)
	}
	return nil
}

func RequireAdmin(actor Actor, action string) error {
	if actor.IsAnonymous() {
		return errors.UnauthorizedError("authentication required")
	}
	if !actor.IsAdmin() {
		return errors.Forbidden("only admins can " + action)
	}
	return nil
}

// CanReadUser lets users read their own records and admins read anyone's.
func CanReadUser(actor Actor, userID string) error {
	if actor.IsAnonymous() {
		return errors.UnauthorizedError("authentication required")
	}
	if !actor.IsAdmin() && actor.ID != userID {
		return errors.Forbidden("you can only access your own bookings")
	}
	return nil
}
