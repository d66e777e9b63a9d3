package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Per-user pub/sub channel carrying appointment change events. Browser
	// sessions subscribe filtered by their own user id; delivery is push
	// notification only, not a read-after-write guarantee.
	userChannelPrefix = "user:"
	userChannelSuffix = ":appointments"

	// De-duplication keys for the reminder sweep
	reminderSentKeyPrefix = "reminder:sent:"
	reminderSentTTL       = 3 * time.Hour
)

// Event types published on the user channel
const (
	EventStatusChanged = "appointment.status_changed"
	EventReminder      = "appointment.reminder"
)

// AppointmentEvent is the wire payload pushed to a patient's channel.
type AppointmentEvent struct {
	Type            string    `json:"type"`
	AppointmentID   uuid.UUID `json:"appointment_id"`
	ClinicID        uuid.UUID `json:"clinic_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
}

// NotificationService pushes appointment change events over redis pub/sub
// so a patient's open session can refresh its view.
type NotificationService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewNotificationService(redisClient *redis.Client, log *logrus.Logger) *NotificationService {
	return &NotificationService{
		redisClient: redisClient,
		log:         log,
	}
}

// UserChannel returns the pub/sub channel name for one user's appointments.
func UserChannel(userID uuid.UUID) string {
	return userChannelPrefix + userID.String() + userChannelSuffix
}

// PublishStatusChange notifies the owning patient that an admin moved their
// appointment. Publish failures are logged, never fatal: the status change
// is already committed and the UI will catch up on next load.
func (s *NotificationService) PublishStatusChange(ctx context.Context, appointment *entity.Appointment) {
	event := AppointmentEvent{
		Type:            EventStatusChanged,
		AppointmentID:   appointment.ID,
		ClinicID:        appointment.ClinicID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
	}
	s.publish(ctx, appointment.UserID, event)
}

// PublishReminder pushes an upcoming-appointment reminder, de-duplicated per
// appointment via a redis key so repeated sweeps don't double-send.
// Returns true when the reminder was actually published.
func (s *NotificationService) PublishReminder(ctx context.Context, appointment *entity.Appointment) (bool, error) {
	dedupKey := fmt.Sprintf("%s%s", reminderSentKeyPrefix, appointment.ID)
	first, err := s.redisClient.SetNX(ctx, dedupKey, 1, reminderSentTTL).Result()
	if err != nil {
		return false, fmt.Errorf("reminder dedup for appointment %s: %w", appointment.ID, err)
	}
	if !first {
		return false, nil
	}

	event := AppointmentEvent{
		Type:            EventReminder,
		AppointmentID:   appointment.ID,
		ClinicID:        appointment.ClinicID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
	}
	if err := s.publish(ctx, appointment.UserID, event); err != nil {
		// Release the dedup claim so the next sweep retries instead of
		// dropping the reminder for the full TTL.
		if delErr := s.redisClient.Del(ctx, dedupKey).Err(); delErr != nil {
			s.log.Warnf("Failed to release reminder dedup key %s: %+v", dedupKey, delErr)
		}
		return false, err
	}
	return true, nil
}

func (s *NotificationService) publish(ctx context.Context, userID uuid.UUID, event AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Warnf("Failed to marshal event for user %s: %+v", userID, err)
		return err
	}

	if err := s.redisClient.Publish(ctx, UserChannel(userID), payload).Err(); err != nil {
		s.log.Warnf("Failed to publish %s for user %s: %+v", event.Type, userID, err)
		return err
	}
	return nil
}
