package handler

import (
	"net/http"

	"github.com/shifacare/medcenter-booking/internal/delivery/http/middleware"
	"github.com/shifacare/medcenter-booking/internal/usecase"
)

// actorFromRequest builds the usecase-level actor from the authenticated
// request context.
func actorFromRequest(r *http.Request) (usecase.Actor, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	return usecase.Actor{UserID: userID, RoleID: roleID}, true
}
