package domain

import "slices"

// Caller идентичность автора запроса, полученная из токена.
type Caller struct {
	ID   int64
	Role Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// RequireRole возвращает *ForbiddenError, если роль caller не входит в allowed.
func RequireRole(caller Caller, allowed ...Role) error {
	if slices.Contains(allowed, caller.Role) {
		return nil
	}
	return &ForbiddenError{Allowed: allowed}
}

// RequireSelf возвращает *ForbiddenError, если ресурс принадлежит другому клиенту.
func RequireSelf(callerID, ownerID int64) error {
	if callerID == ownerID {
		return nil
	}
	return &ForbiddenError{}
}

// Authorize сначала проверяет роль, затем для роли user проверяет владельца ресурса ownerID.
func Authorize(caller Caller, ownerID int64, allowed ...Role) error {
	if err := RequireRole(caller, allowed...); err != nil {
		return err
	}
	if caller.Role == RoleUser {
		return RequireSelf(caller.ID, ownerID)
	}
	return nil
}
