package usecase

import (
	"context"
	"time"

	"github.com/shifacare/medcenter-booking/internal/converter"
	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	"github.com/shifacare/medcenter-booking/internal/domain/repository"
	"github.com/shifacare/medcenter-booking/internal/scheduling"
	"github.com/shifacare/medcenter-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The sweep targets appointments roughly two hours out. The window is ten
// minutes wide so a sweeper polling every few minutes cannot miss a slot;
// the redis dedup key keeps repeated hits from double-sending.
const (
	reminderWindowFrom = 115 * time.Minute
	reminderWindowTo   = 125 * time.Minute
)

type ReminderUsecase interface {
	SweepUpcoming(ctx context.Context) (*dto.ReminderSweepResponse, error)
}

type reminderUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	notificationService *service.NotificationService
	now                 func() time.Time
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notificationService *service.NotificationService,
) ReminderUsecase {
	return &reminderUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

// SweepUpcoming finds approved appointments starting in roughly two hours
// and publishes a reminder for each one not yet reminded.
func (u *reminderUsecase) SweepUpcoming(ctx context.Context) (*dto.ReminderSweepResponse, error) {
	now := u.now()
	from := now.Add(reminderWindowFrom)
	to := now.Add(reminderWindowTo)

	appointments, err := u.findInWindow(ctx, from, to)
	if err != nil {
		u.log.Warnf("Failed to load appointments for reminder sweep: %+v", err)
		return nil, err
	}

	sent := 0
	reminded := make([]entity.Appointment, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		ok, err := u.notificationService.PublishReminder(ctx, appointment)
		if err != nil {
			u.log.Warnf("Failed to publish reminder for appointment %s: %+v", appointment.ID, err)
			continue
		}
		if ok {
			sent++
			reminded = append(reminded, *appointment)
		}
	}

	return &dto.ReminderSweepResponse{
		Success:       true,
		RemindersSent: sent,
		Appointments:  converter.AppointmentsToResponses(reminded),
	}, nil
}

// findInWindow queries per calendar date because appointment date and time
// are stored in separate columns. A window crossing midnight splits into
// two queries.
func (u *reminderUsecase) findInWindow(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	fromTime := scheduling.FormatClock(from.Hour(), from.Minute())
	toTime := scheduling.FormatClock(to.Hour(), to.Minute())

	if from.Day() == to.Day() {
		return u.appointmentRepo.FindApprovedInWindow(u.db.WithContext(ctx), from, fromTime, toTime)
	}

	first, err := u.appointmentRepo.FindApprovedInWindow(u.db.WithContext(ctx), from, fromTime, "24:00")
	if err != nil {
		return nil, err
	}
	second, err := u.appointmentRepo.FindApprovedInWindow(u.db.WithContext(ctx), to, "00:00", toTime)
	if err != nil {
		return nil, err
	}
	return append(first, second...), nil
}
