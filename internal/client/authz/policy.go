// Package authz holds the pure authorization predicates gating client
// actions. Every function takes an explicit session snapshot; nothing here
// reads ambient state or talks to the backend, which remains the
// authoritative enforcer.
package authz

import (
	"github.com/povreview/povcli/internal/client/models"
	"github.com/povreview/povcli/internal/client/session"
)

func isAdmin(s session.Snapshot) bool {
	return s.User.HasRole(models.RoleAdmin)
}

// CanCreateMovie: catalog writes are admin-only.
func CanCreateMovie(s session.Snapshot) bool { return isAdmin(s) }

// CanEditMovie: catalog writes are admin-only.
func CanEditMovie(s session.Snapshot) bool { return isAdmin(s) }

// CanDeleteMovie: catalog writes are admin-only.
func CanDeleteMovie(s session.Snapshot) bool { return isAdmin(s) }

// CanViewUsers: the roster is admin-only.
func CanViewUsers(s session.Snapshot) bool { return isAdmin(s) }

// CanCreateReview: any authenticated user may review.
func CanCreateReview(s session.Snapshot) bool { return s.IsAuthenticated }

// CanEditReview: strictly owner-only. Admins may NOT edit other users'
// reviews; only delete them. The asymmetry with CanDeleteReview is
// deliberate policy, not an oversight.
func CanEditReview(s session.Snapshot, ownerID string) bool {
	return s.IsAuthenticated && s.User != nil && s.User.ID == ownerID
}

// CanDeleteReview: owner or admin.
func CanDeleteReview(s session.Snapshot, ownerID string) bool {
	if !s.IsAuthenticated {
		return false
	}
	return (s.User != nil && s.User.ID == ownerID) || isAdmin(s)
}
