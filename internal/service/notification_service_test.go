package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failPublishHook breaks only the PUBLISH command so the surrounding
// dedup bookkeeping still runs against the real store.
type failPublishHook struct{}

func (failPublishHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (failPublishHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == "publish" {
			err := errors.New("broken pipe")
			cmd.SetErr(err)
			return err
		}
		return next(ctx, cmd)
	}
}

func (failPublishHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func testAppointment() *entity.Appointment {
	return &entity.Appointment{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		ClinicID:        uuid.New(),
		AppointmentDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:30",
		Status:          entity.AppointmentStatusApproved,
	}
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPublishReminderDedup(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewNotificationService(client, discardLogger())

	appointment := testAppointment()

	sent, err := s.PublishReminder(context.Background(), appointment)
	require.NoError(t, err)
	assert.True(t, sent)
	assert.True(t, mr.Exists(reminderSentKeyPrefix+appointment.ID.String()))

	// A repeated sweep inside the TTL must not send again.
	sent, err = s.PublishReminder(context.Background(), appointment)
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestPublishReminderReleasesClaimOnPublishFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	client.AddHook(failPublishHook{})
	s := NewNotificationService(client, discardLogger())

	appointment := testAppointment()

	sent, err := s.PublishReminder(context.Background(), appointment)
	require.Error(t, err)
	assert.False(t, sent)

	// The dedup claim is released so the next sweep retries instead of
	// silently dropping the reminder for the full TTL.
	assert.False(t, mr.Exists(reminderSentKeyPrefix+appointment.ID.String()))
}
