package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/repository"
	"github.com/shifacare/medcenter-booking/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

type AvailabilityUsecase interface {
	GetAvailableTimes(ctx context.Context, clinicID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clinicRepo      repository.ClinicRepository
	fixedSlotRepo   repository.FixedTimeSlotRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	fixedSlotRepo repository.FixedTimeSlotRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		clinicRepo:      clinicRepo,
		fixedSlotRepo:   fixedSlotRepo,
		appointmentRepo: appointmentRepo,
	}
}

// GetAvailableTimes computes the bookable times for a clinic on a date:
// candidate slots (fixed list or generated from working hours) minus times
// already held by a pending or approved appointment.
func (u *availabilityUsecase) GetAvailableTimes(ctx context.Context, clinicID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	resp := &dto.AvailabilityResponse{
		ClinicID: clinicID,
		Date:     day.Format(dateLayout),
		Times:    []string{},
	}

	if clinic.IsActive != nil && !*clinic.IsActive {
		return resp, nil
	}

	var candidates []string
	if clinic.UseFixedTimeSlots {
		slots, err := u.fixedSlotRepo.FindActiveByClinicAndDay(u.db.WithContext(ctx), clinicID, int(day.Weekday()))
		if err != nil {
			// Fail closed: an unreadable slot configuration must never
			// surface times that may not exist.
			u.log.Errorf("Failed to load fixed slots for clinic %s: %+v", clinicID, err)
			resp.Degraded = true
			return resp, nil
		}
		candidates = make([]string, len(slots))
		for i, slot := range slots {
			candidates[i] = scheduling.TruncateToMinute(slot.TimeSlot)
		}
	} else {
		iv := scheduling.ResolveWorkingInterval(clinic.WorkingHours, day)
		if iv == nil {
			return resp, nil
		}
		candidates, err = scheduling.GenerateSlots(*iv)
		if err != nil {
			u.log.Errorf("Failed to generate slots for clinic %s: %+v", clinicID, err)
			resp.Degraded = true
			return resp, nil
		}
	}

	if len(candidates) == 0 {
		return resp, nil
	}

	booked, err := u.appointmentRepo.FindBookedTimes(u.db.WithContext(ctx), clinicID, day)
	if err != nil {
		u.log.Warnf("Failed to load booked times for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	resp.Times = scheduling.FilterAvailable(candidates, booked)
	return resp, nil
}
