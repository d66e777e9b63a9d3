package usecase

import (
	"context"
	"errors"

	"github.com/shifacare/medcenter-booking/internal/converter"
	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	"github.com/shifacare/medcenter-booking/internal/domain/repository"
	"github.com/shifacare/medcenter-booking/internal/scheduling"
	"github.com/shifacare/medcenter-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrClinicNotFound      = errors.New("clinic not found")
	ErrInvalidSlotInterval = errors.New("interval minutes must be between 5 and 120")
	ErrInvalidSlotWindow   = errors.New("end time must be after start time")
)

type ClinicUsecase interface {
	CreateClinic(ctx context.Context, actor Actor, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	GetClinic(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error)
	ListClinicsByCenter(ctx context.Context, centerID uuid.UUID) (*dto.ClinicListResponse, error)
	UpdateClinic(ctx context.Context, actor Actor, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
	DeleteClinic(ctx context.Context, actor Actor, clinicID uuid.UUID) error

	ListFixedSlots(ctx context.Context, actor Actor, clinicID uuid.UUID) (*dto.FixedTimeSlotListResponse, error)
	ReplaceFixedSlots(ctx context.Context, actor Actor, clinicID uuid.UUID, req *dto.ReplaceFixedSlotsRequest) (*dto.FixedTimeSlotListResponse, error)
	GenerateFixedSlots(ctx context.Context, actor Actor, clinicID uuid.UUID, req *dto.GenerateFixedSlotsRequest) (*dto.FixedTimeSlotListResponse, error)
}

type clinicUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	clinicRepo    repository.ClinicRepository
	centerRepo    repository.MedicalCenterRepository
	fixedSlotRepo repository.FixedTimeSlotRepository
	adminRoleRepo repository.AdminRoleRepository
	auditService  service.AuditService
}

func NewClinicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	centerRepo repository.MedicalCenterRepository,
	fixedSlotRepo repository.FixedTimeSlotRepository,
	adminRoleRepo repository.AdminRoleRepository,
	auditService service.AuditService,
) ClinicUsecase {
	return &clinicUsecase{
		db:            db,
		log:           log,
		clinicRepo:    clinicRepo,
		centerRepo:    centerRepo,
		fixedSlotRepo: fixedSlotRepo,
		adminRoleRepo: adminRoleRepo,
		auditService:  auditService,
	}
}

func (u *clinicUsecase) CreateClinic(ctx context.Context, actor Actor, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	if err := authorizeCenter(u.db.WithContext(ctx), u.adminRoleRepo, actor, req.MedicalCenterID); err != nil {
		return nil, err
	}

	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), req.MedicalCenterID)
	if err != nil {
		u.log.Warnf("Failed to find medical center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	active := true
	clinic := &entity.Clinic{
		MedicalCenterID:   req.MedicalCenterID,
		Name:              req.Name,
		DoctorName:        req.DoctorName,
		Description:       req.Description,
		WorkingHours:      converter.WorkingHoursFromRequest(req.WorkingHours),
		UseFixedTimeSlots: req.UseFixedSlots,
		IsActive:          &active,
	}

	if err := u.clinicRepo.Create(u.db.WithContext(ctx), clinic); err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionClinicCreate,
		"clinic", clinic.ID.String(), nil, clinic)

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) GetClinic(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) ListClinicsByCenter(ctx context.Context, centerID uuid.UUID) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindByCenterID(u.db.WithContext(ctx), centerID)
	if err != nil {
		u.log.Warnf("Failed to list clinics for center %s: %+v", centerID, err)
		return nil, err
	}

	return &dto.ClinicListResponse{
		Clinics: converter.ClinicsToResponses(clinics),
		Total:   len(clinics),
	}, nil
}

func (u *clinicUsecase) UpdateClinic(ctx context.Context, actor Actor, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	clinic, err := u.findAuthorizedClinic(ctx, actor, clinicID)
	if err != nil {
		return nil, err
	}

	old := *clinic

	if req.Name != "" {
		clinic.Name = req.Name
	}
	if req.DoctorName != "" {
		clinic.DoctorName = req.DoctorName
	}
	if req.Description != "" {
		clinic.Description = req.Description
	}
	if req.WorkingHours != nil {
		clinic.WorkingHours = converter.WorkingHoursFromRequest(req.WorkingHours)
	}
	if req.UseFixedSlots != nil {
		clinic.UseFixedTimeSlots = *req.UseFixedSlots
	}
	if req.IsActive != nil {
		clinic.IsActive = req.IsActive
	}

	if err := u.clinicRepo.Update(u.db.WithContext(ctx), clinic); err != nil {
		u.log.Warnf("Failed to update clinic: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionClinicUpdate,
		"clinic", clinic.ID.String(), old, clinic)

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) DeleteClinic(ctx context.Context, actor Actor, clinicID uuid.UUID) error {
	if _, err := u.findAuthorizedClinic(ctx, actor, clinicID); err != nil {
		return err
	}

	affected, err := u.clinicRepo.Delete(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to delete clinic: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrClinicNotFound
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionClinicDelete,
		"clinic", clinicID.String(), nil, nil)

	return nil
}

func (u *clinicUsecase) ListFixedSlots(ctx context.Context, actor Actor, clinicID uuid.UUID) (*dto.FixedTimeSlotListResponse, error) {
	if _, err := u.findAuthorizedClinic(ctx, actor, clinicID); err != nil {
		return nil, err
	}

	slots, err := u.fixedSlotRepo.FindByClinicID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list fixed slots for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return &dto.FixedTimeSlotListResponse{
		Slots: converter.FixedTimeSlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

func (u *clinicUsecase) ReplaceFixedSlots(ctx context.Context, actor Actor, clinicID uuid.UUID, req *dto.ReplaceFixedSlotsRequest) (*dto.FixedTimeSlotListResponse, error) {
	if _, err := u.findAuthorizedClinic(ctx, actor, clinicID); err != nil {
		return nil, err
	}

	times := make([]string, len(req.TimeSlots))
	for i, t := range req.TimeSlots {
		times[i] = scheduling.TruncateToMinute(t)
	}

	if err := u.fixedSlotRepo.ReplaceForClinicDay(u.db.WithContext(ctx), clinicID, req.DayOfWeek, times); err != nil {
		u.log.Warnf("Failed to replace fixed slots for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return u.listDaySlots(ctx, clinicID, req.DayOfWeek)
}

// GenerateFixedSlots derives a weekday's fixed slot list from an interval
// with an admin-chosen step. This is a distinct path from the patient-facing
// 7-minute generator.
func (u *clinicUsecase) GenerateFixedSlots(ctx context.Context, actor Actor, clinicID uuid.UUID, req *dto.GenerateFixedSlotsRequest) (*dto.FixedTimeSlotListResponse, error) {
	if _, err := u.findAuthorizedClinic(ctx, actor, clinicID); err != nil {
		return nil, err
	}

	iv := scheduling.Interval{Start: req.StartTime, End: req.EndTime}
	times, err := scheduling.GenerateIntervalSlots(iv, req.IntervalMinutes)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidInterval) {
			return nil, ErrInvalidSlotInterval
		}
		return nil, err
	}
	if len(times) == 0 {
		return nil, ErrInvalidSlotWindow
	}

	if err := u.fixedSlotRepo.ReplaceForClinicDay(u.db.WithContext(ctx), clinicID, req.DayOfWeek, times); err != nil {
		u.log.Warnf("Failed to store generated slots for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return u.listDaySlots(ctx, clinicID, req.DayOfWeek)
}

func (u *clinicUsecase) listDaySlots(ctx context.Context, clinicID uuid.UUID, dayOfWeek int) (*dto.FixedTimeSlotListResponse, error) {
	slots, err := u.fixedSlotRepo.FindActiveByClinicAndDay(u.db.WithContext(ctx), clinicID, dayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to reload fixed slots for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return &dto.FixedTimeSlotListResponse{
		Slots: converter.FixedTimeSlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// findAuthorizedClinic loads the clinic and verifies the actor may
// administer its owning center.
func (u *clinicUsecase) findAuthorizedClinic(ctx context.Context, actor Actor, clinicID uuid.UUID) (*entity.Clinic, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	if err := authorizeCenter(u.db.WithContext(ctx), u.adminRoleRepo, actor, clinic.MedicalCenterID); err != nil {
		return nil, err
	}
	return clinic, nil
}
