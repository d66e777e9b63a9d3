package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/delivery/http/middleware"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	"github.com/shifacare/medcenter-booking/internal/scheduling"
	"github.com/shifacare/medcenter-booking/internal/usecase"
	"github.com/shifacare/medcenter-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentUsecase struct {
	createFn  func(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	cancelFn  func(ctx context.Context, userID, appointmentID uuid.UUID) error
	listFn    func(ctx context.Context, actor usecase.Actor, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	approveFn func(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error)
}

func (f *fakeAppointmentUsecase) CreateAppointment(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return f.createFn(ctx, userID, req)
}

func (f *fakeAppointmentUsecase) GetMyAppointments(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (f *fakeAppointmentUsecase) CancelMyAppointment(ctx context.Context, userID uuid.UUID, appointmentID uuid.UUID) error {
	return f.cancelFn(ctx, userID, appointmentID)
}

func (f *fakeAppointmentUsecase) ListAppointments(ctx context.Context, actor usecase.Actor, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	return f.listFn(ctx, actor, filter)
}

func (f *fakeAppointmentUsecase) ApproveAppointment(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error) {
	if f.approveFn != nil {
		return f.approveFn(ctx, actor, appointmentID, req)
	}
	return nil, nil
}

func (f *fakeAppointmentUsecase) RejectAppointment(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (f *fakeAppointmentUsecase) DeleteAppointment(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID) error {
	return nil
}

func authedRequest(t *testing.T, method, target string, body interface{}, userID uuid.UUID, roleID int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func validCreateRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		ClinicID:        uuid.New(),
		AppointmentDate: "2025-03-02",
		AppointmentTime: "08:07",
		PatientName:     "سارة أحمد",
		PatientGender:   entity.GenderFemale,
		PatientAge:      29,
	}
}

func TestCreateAppointmentSuccess(t *testing.T) {
	userID := uuid.New()
	fake := &fakeAppointmentUsecase{
		createFn: func(ctx context.Context, gotUserID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			assert.Equal(t, userID, gotUserID)
			return &dto.AppointmentResponse{
				ID:              uuid.New(),
				AppointmentTime: req.AppointmentTime,
				Status:          string(entity.AppointmentStatusPending),
			}, nil
		},
	}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	req := authedRequest(t, http.MethodPost, "/api/v1/appointments", validCreateRequest(), userID, entity.RoleIDPatient)
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		createFn: func(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrSlotTaken
		},
	}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	req := authedRequest(t, http.MethodPost, "/api/v1/appointments", validCreateRequest(), uuid.New(), entity.RoleIDPatient)
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestCreateAppointmentEligibilityRejected(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		createFn: func(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, scheduling.ErrInternalMedicineAgeTooLow
		},
	}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	body := validCreateRequest()
	body.PatientAge = 10
	req := authedRequest(t, http.MethodPost, "/api/v1/appointments", body, uuid.New(), entity.RoleIDPatient)
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "18")
}

func TestCreateAppointmentValidation(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		createFn: func(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	body := validCreateRequest()
	body.PatientGender = "X"
	req := authedRequest(t, http.MethodPost, "/api/v1/appointments", body, uuid.New(), entity.RoleIDPatient)
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAppointmentUnauthenticated(t *testing.T) {
	h := NewAppointmentHandler(&fakeAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCancelMyAppointmentNotPending(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		cancelFn: func(ctx context.Context, userID, appointmentID uuid.UUID) error {
			return usecase.ErrNotCancellable
		},
	}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	appointmentID := uuid.New()
	req := authedRequest(t, http.MethodPost, "/api/v1/appointments/"+appointmentID.String()+"/cancel", nil, uuid.New(), entity.RoleIDPatient)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.CancelMyAppointment(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApproveAppointmentMalformedBody(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		approveFn: func(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error) {
			t.Fatal("usecase must not be reached on a malformed body")
			return nil, nil
		},
	}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	appointmentID := uuid.New()
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/admin/appointments/"+appointmentID.String()+"/approve",
		strings.NewReader(`{"admin_notes":`))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDAdmin)
	req = mux.SetURLVars(req.WithContext(ctx), map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.ApproveAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveAppointmentEmptyBody(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		approveFn: func(ctx context.Context, actor usecase.Actor, appointmentID uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error) {
			assert.Empty(t, req.AdminNotes)
			return &dto.AppointmentResponse{
				ID:     appointmentID,
				Status: string(entity.AppointmentStatusApproved),
			}, nil
		},
	}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	appointmentID := uuid.New()
	req := authedRequest(t, http.MethodPost, "/api/v1/admin/appointments/"+appointmentID.String()+"/approve", nil, uuid.New(), entity.RoleIDAdmin)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.ApproveAppointment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)
}

func TestListAppointmentsFilterParsing(t *testing.T) {
	centerID := uuid.New()
	fake := &fakeAppointmentUsecase{
		listFn: func(ctx context.Context, actor usecase.Actor, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
			assert.Equal(t, centerID, filter.MedicalCenterID)
			assert.Equal(t, "pending", filter.Status)
			assert.Equal(t, "2025-03-02", filter.Date)
			return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
		},
	}
	h := NewAppointmentHandler(fake, validator.NewValidator())

	target := "/api/v1/admin/appointments?medical_center_id=" + centerID.String() + "&status=pending&date=2025-03-02"
	req := authedRequest(t, http.MethodGet, target, nil, uuid.New(), entity.RoleIDAdmin)
	rec := httptest.NewRecorder()
	h.ListAppointments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAppointmentsBadCenterID(t *testing.T) {
	h := NewAppointmentHandler(&fakeAppointmentUsecase{}, validator.NewValidator())

	req := authedRequest(t, http.MethodGet, "/api/v1/admin/appointments?medical_center_id=nope", nil, uuid.New(), entity.RoleIDAdmin)
	rec := httptest.NewRecorder()
	h.ListAppointments(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
