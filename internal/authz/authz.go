// Package authz holds the client-side authorization predicates: which
// controls a page renders for the current user. The server enforces the same
// rules; these only decide what is worth offering.
package authz

import "gallery/cli/internal/models"

// CanManage reports whether current may edit or delete an entity owned by
// owner: admins manage everything, owners manage their own.
func CanManage(owner models.UserRef, current *models.User) bool {
	if current == nil {
		return false
	}
	if current.IsAdmin() {
		return true
	}
	return current.ID != "" && owner.ID() != "" && current.ID == owner.ID()
}

// HasReacted reports whether current sits in the user set of the given emoji
// bucket. A missing bucket means no reaction; buckets are independent per
// emoji.
func HasReacted(reactions []models.Reaction, emoji string, current *models.User) bool {
	if current == nil || current.ID == "" {
		return false
	}
	for _, r := range reactions {
		if r.Emoji != emoji {
			continue
		}
		for _, ref := range r.Users {
			if ref.ID() == current.ID {
				return true
			}
		}
	}
	return false
}

func ReactionCount(reactions []models.Reaction, emoji string) int {
	for _, r := range reactions {
		if r.Emoji == emoji {
			return len(r.Users)
		}
	}
	return 0
}
