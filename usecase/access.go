package usecase

import (
	"quicknotes/model"
)

// Authorize decides whether the acting user may touch a resource. Allowed
// iff the actor owns the resource or holds exactly the required role. An
// empty requiredRole means ownership is the only path, which is how every
// note operation is gated: admins get no implicit override on notes.
func Authorize(actor *model.User, ownerID int64, requiredRole string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if actor.ID == ownerID {
		return nil
	}
	if requiredRole != "" && actor.Role == requiredRole {
		return nil
	}
	return ErrForbidden
}
