package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrSlotTaken           = errors.New("هذا الموعد محجوز بالفعل، يرجى اختيار وقت آخر")
	ErrSlotNotOffered      = errors.New("الوقت المختار غير متاح في جدول العيادة")
	ErrClinicInactive      = errors.New("العيادة غير متاحة للحجز حالياً")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotCancellable      = errors.New("only pending appointments can be cancelled")
	ErrAlreadyDecided      = errors.New("appointment has already been decided")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error)
	CancelMyAppointment(ctx context.Context, userID uuid.UUID, appointmentID uuid.UUID) error

	ListAppointments(ctx context.Context, actor Actor, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	ApproveAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error)
	RejectAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	clinicRepo          repository.ClinicRepository
	fixedSlotRepo       repository.FixedTimeSlotRepository
	adminRoleRepo       repository.AdminRoleRepository
	notificationService *service.NotificationService
	auditService        service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	clinicRepo repository.ClinicRepository,
	fixedSlotRepo repository.FixedTimeSlotRepository,
	adminRoleRepo repository.AdminRoleRepository,
	notificationService *service.NotificationService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		clinicRepo:          clinicRepo,
		fixedSlotRepo:       fixedSlotRepo,
		adminRoleRepo:       adminRoleRepo,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

// CreateAppointment books a slot for the authenticated patient. Eligibility
// is validated before any write; the slot is then claimed under the
// submission-time conflict guard, with the database unique index as the
// final arbiter for concurrent submissions.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	day, err := time.Parse(dateLayout, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	timeOfDay := scheduling.TruncateToMinute(req.AppointmentTime)

	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), req.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	if clinic.IsActive != nil && !*clinic.IsActive {
		return nil, ErrClinicInactive
	}

	ctype := scheduling.ClassifyClinic(clinic.Name)
	if err := scheduling.ValidateEligibility(ctype, req.PatientAge, req.PatientGender); err != nil {
		return nil, err
	}

	if err := u.validateSlotOffered(ctx, clinic, day, timeOfDay); err != nil {
		return nil, err
	}

	var appointment *entity.Appointment
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := u.appointmentRepo.FindBySlot(tx, clinic.ID, day, timeOfDay)
		if err != nil {
			return err
		}

		conflicting, reusable := scheduling.PartitionBySlot(existing)
		if conflicting != nil {
			return ErrSlotTaken
		}

		if reusable != nil {
			// Rebooking a freed slot overwrites the cancelled/rejected
			// row so the unique index stays satisfied. The status guard
			// in Rebook arbitrates concurrent claims of the same row.
			reusable.UserID = userID
			reusable.Status = entity.AppointmentStatusPending
			reusable.PatientName = req.PatientName
			reusable.PatientGender = req.PatientGender
			reusable.PatientAge = req.PatientAge
			reusable.Notes = req.Notes
			reusable.AdminNotes = ""
			affected, err := u.appointmentRepo.Rebook(tx, reusable)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrSlotTaken
			}
			appointment = reusable
			return nil
		}

		appointment = &entity.Appointment{
			UserID:          userID,
			MedicalCenterID: clinic.MedicalCenterID,
			ClinicID:        clinic.ID,
			AppointmentDate: day,
			AppointmentTime: timeOfDay,
			Status:          entity.AppointmentStatusPending,
			PatientName:     req.PatientName,
			PatientGender:   req.PatientGender,
			PatientAge:      req.PatientAge,
			Notes:           req.Notes,
		}
		return u.appointmentRepo.Create(tx, appointment)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent submission won the race for this slot.
			return nil, ErrSlotTaken
		}
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &userID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID.String(), nil, appointment)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CancelMyAppointment cancels the patient's own appointment while it is
// still pending. The cancelled row keeps its slot position and is reused
// if anyone books the same slot later.
func (u *appointmentUsecase) CancelMyAppointment(ctx context.Context, userID uuid.UUID, appointmentID uuid.UUID) error {
	affected, err := u.appointmentRepo.CancelOwnPending(u.db.WithContext(ctx), appointmentID, userID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if affected == 0 {
		appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil || appointment.UserID != userID {
			return ErrAppointmentNotFound
		}
		return ErrNotCancellable
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &userID, entity.AuditActionAppointmentCancel,
		"appointment", appointmentID.String(), nil, nil)

	return nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, actor Actor, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	if filter == nil {
		filter = &entity.AppointmentFilter{}
	}

	if !actor.IsPlatformAdmin() {
		if err := u.scopeFilterToActor(ctx, actor, filter); err != nil {
			return nil, err
		}
	}

	appointments, err := u.appointmentRepo.FindWithFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ApproveAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error) {
	return u.decide(ctx, actor, appointmentID, entity.AppointmentStatusApproved, req.AdminNotes, entity.AuditActionAppointmentApprove)
}

func (u *appointmentUsecase) RejectAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error) {
	return u.decide(ctx, actor, appointmentID, entity.AppointmentStatusRejected, req.AdminNotes, entity.AuditActionAppointmentReject)
}

// decide moves a pending appointment to approved or rejected and notifies
// the booking patient. Rejection frees the slot immediately because only
// pending and approved rows count as booked.
func (u *appointmentUsecase) decide(ctx context.Context, actor Actor, appointmentID uuid.UUID, status entity.AppointmentStatus, adminNotes string, auditAction string) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAuthorizedAppointment(ctx, actor, appointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.IsPending() {
		return nil, ErrAlreadyDecided
	}

	old := *appointment

	affected, err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), appointmentID, status, adminNotes)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	appointment.Status = status
	appointment.AdminNotes = adminNotes

	u.notificationService.PublishStatusChange(ctx, appointment)

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, auditAction,
		"appointment", appointment.ID.String(), old, appointment)

	return converter.AppointmentToResponse(appointment), nil
}

// DeleteAppointment removes the row entirely, freeing the slot for a fresh
// insert. Intended for cleanup; normal workflows reject or cancel instead.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID) error {
	appointment, err := u.findAuthorizedAppointment(ctx, actor, appointmentID)
	if err != nil {
		return err
	}

	affected, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionAppointmentDelete,
		"appointment", appointment.ID.String(), appointment, nil)

	return nil
}

// validateSlotOffered rejects times the clinic never offers, so conflict
// handling only ever runs against real candidate slots.
func (u *appointmentUsecase) validateSlotOffered(ctx context.Context, clinic *entity.Clinic, day time.Time, timeOfDay string) error {
	if clinic.UseFixedTimeSlots {
		slots, err := u.fixedSlotRepo.FindActiveByClinicAndDay(u.db.WithContext(ctx), clinic.ID, int(day.Weekday()))
		if err != nil {
			u.log.Errorf("Failed to load fixed slots for clinic %s: %+v", clinic.ID, err)
			return err
		}
		for _, slot := range slots {
			if scheduling.TruncateToMinute(slot.TimeSlot) == timeOfDay {
				return nil
			}
		}
		return ErrSlotNotOffered
	}

	iv := scheduling.ResolveWorkingInterval(clinic.WorkingHours, day)
	if iv == nil {
		return ErrSlotNotOffered
	}
	candidates, err := scheduling.GenerateSlots(*iv)
	if err != nil {
		return ErrSlotNotOffered
	}
	for _, c := range candidates {
		if c == timeOfDay {
			return nil
		}
	}
	return ErrSlotNotOffered
}

// scopeFilterToActor restricts the admin listing to centers the center
// admin actually administers.
func (u *appointmentUsecase) scopeFilterToActor(ctx context.Context, actor Actor, filter *entity.AppointmentFilter) error {
	if actor.RoleID != entity.RoleIDCenterAdmin {
		return ErrCenterForbidden
	}

	roles, err := u.adminRoleRepo.FindByUserID(u.db.WithContext(ctx), actor.UserID)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return ErrCenterForbidden
	}

	if filter.MedicalCenterID != uuid.Nil {
		for _, role := range roles {
			if role.MedicalCenterID == filter.MedicalCenterID {
				return nil
			}
		}
		return ErrCenterForbidden
	}

	filter.MedicalCenterID = roles[0].MedicalCenterID
	return nil
}

func (u *appointmentUsecase) findAuthorizedAppointment(ctx context.Context, actor Actor, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := authorizeCenter(u.db.WithContext(ctx), u.adminRoleRepo, actor, appointment.MedicalCenterID); err != nil {
		return nil, err
	}
	return appointment, nil
}
