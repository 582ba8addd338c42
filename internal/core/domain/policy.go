package domain

// Authorization policy for hotel mutations. All functions are pure and must
// be evaluated before any write; a denial leaves no persistence side effect.

// CanDelete reports whether the caller may remove a hotel. Admin only.
func CanDelete(roles RoleSet) bool {
	return roles.Has(RoleAdmin)
}

// CanChangeManager reports whether the caller may request a manager
// reassignment. A no-op request (requested equals current) is always
// allowed; otherwise the caller needs the Admin or Manager role.
func CanChangeManager(roles RoleSet, current, requested *int64) bool {
	if managerEqual(current, requested) {
		return true
	}
	return roles.HasAny(RoleAdmin, RoleManager)
}

// ApplyManagerChange resolves the manager value that actually persists.
// Only Admin callers have the requested value stored; everyone else keeps
// the current assignment even when allowed to ask.
func ApplyManagerChange(roles RoleSet, current, requested *int64) *int64 {
	if roles.Has(RoleAdmin) {
		return requested
	}
	return current
}

func managerEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
