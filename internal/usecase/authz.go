package usecase

import (
	"errors"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	"github.com/shifacare/medcenter-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCenterForbidden is returned when a center admin acts on a medical
// center they do not administer.
var ErrCenterForbidden = errors.New("not an admin of this medical center")

// Actor identifies the authenticated caller for scope checks.
type Actor struct {
	UserID uuid.UUID
	RoleID int
}

// IsPlatformAdmin reports whether the actor is the global super admin.
func (a Actor) IsPlatformAdmin() bool {
	return a.RoleID == entity.RoleIDAdmin
}

// authorizeCenter allows platform admins everywhere, and center admins only
// on centers they administer.
func authorizeCenter(db *gorm.DB, adminRoleRepo repository.AdminRoleRepository, actor Actor, centerID uuid.UUID) error {
	if actor.IsPlatformAdmin() {
		return nil
	}
	if actor.RoleID != entity.RoleIDCenterAdmin {
		return ErrCenterForbidden
	}

	roles, err := adminRoleRepo.FindByUserID(db, actor.UserID)
	if err != nil {
		return err
	}
	for _, role := range roles {
		if role.MedicalCenterID == centerID {
			return nil
		}
	}
	return ErrCenterForbidden
}
