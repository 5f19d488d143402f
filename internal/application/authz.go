package application

import "github.com/twomenstudio/studiopanel/internal/domain/model"

// CanManage is the single authorization predicate for protected operations:
// only an authenticated admin may mutate content. Every gate in the system
// goes through this function rather than comparing role strings ad hoc.
func CanManage(u *model.User) bool {
	return u != nil && u.Role == model.RoleAdmin
}
