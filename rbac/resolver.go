package rbac

import (
	"sort"

	"gorm.io/gorm"

	"storefront-app/models"
)

// Access is the permission decision for one identity. Admins get the full
// panel, so Permissions stays empty for them; for everyone else it is the
// union of the tags of their assigned custom roles.
type Access struct {
	IsAdmin       bool     `json:"is_admin"`
	HasCustomRole bool     `json:"has_custom_role"`
	Permissions   []string `json:"permissions"`
}

// Allows reports whether the access decision covers the given section tag.
func (a Access) Allows(tag string) bool {
	if a.IsAdmin {
		return true
	}
	for _, permission := range a.Permissions {
		if permission == tag {
			return true
		}
	}
	return false
}

// ResolveAccess looks up the effective access for an email. It never
// returns an error: a missing account, a failed lookup and a user with no
// roles all come back as the zero Access, and protected actions stay
// closed either way. Callers re-invoke after anything that could change
// their own access; there is no push invalidation.
func ResolveAccess(database *gorm.DB, email string) Access {
	var access Access

	var user models.User
	if database.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return access
	}

	// Active admin grant short-circuits custom roles entirely.
	var grant models.AdminGrant
	if database.Where("user_id = ? AND removed_at IS NULL", user.ID).First(&grant).RowsAffected > 0 {
		access.IsAdmin = true
		return access
	}

	var assignments []models.UserRole
	if err := database.Where("user_id = ?", user.ID).Find(&assignments).Error; err != nil {
		return access
	}
	if len(assignments) == 0 {
		return access
	}

	roleIDs := make([]uint, 0, len(assignments))
	for _, assignment := range assignments {
		roleIDs = append(roleIDs, assignment.RoleID)
	}

	var roles []models.Role
	if err := database.Preload("Permissions").Where("id IN ?", roleIDs).Find(&roles).Error; err != nil {
		return access
	}

	seen := make(map[string]bool)
	tags := []string{}
	for _, role := range roles {
		for _, permission := range role.Permissions {
			if !seen[permission.Name] {
				seen[permission.Name] = true
				tags = append(tags, permission.Name)
			}
		}
	}
	sort.Strings(tags)

	access.HasCustomRole = true
	access.Permissions = tags
	return access
}
