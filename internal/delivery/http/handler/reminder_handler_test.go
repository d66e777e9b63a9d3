package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shifacare/medcenter-booking/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
)

type fakeReminderUsecase struct {
	sweepFn func(ctx context.Context) (*dto.ReminderSweepResponse, error)
}

func (f *fakeReminderUsecase) SweepUpcoming(ctx context.Context) (*dto.ReminderSweepResponse, error) {
	return f.sweepFn(ctx)
}

func TestSweepUpcomingContract(t *testing.T) {
	fake := &fakeReminderUsecase{
		sweepFn: func(ctx context.Context) (*dto.ReminderSweepResponse, error) {
			return &dto.ReminderSweepResponse{
				Success:       true,
				RemindersSent: 2,
				Appointments:  []dto.AppointmentResponse{},
			}, nil
		},
	}
	h := NewReminderHandler(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/sweep", nil)
	rec := httptest.NewRecorder()
	h.SweepUpcoming(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// camelCase keys are part of the cron contract
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"remindersSent":2`)
	assert.Contains(t, rec.Body.String(), `"appointments":[]`)
}

func TestSweepUpcomingFailure(t *testing.T) {
	fake := &fakeReminderUsecase{
		sweepFn: func(ctx context.Context) (*dto.ReminderSweepResponse, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewReminderHandler(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/sweep", nil)
	rec := httptest.NewRecorder()
	h.SweepUpcoming(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}
