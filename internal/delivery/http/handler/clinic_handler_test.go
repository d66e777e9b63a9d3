package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/usecase"
	"github.com/shifacare/medcenter-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type fakeAvailabilityUsecase struct {
	getFn func(ctx context.Context, clinicID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
}

func (f *fakeAvailabilityUsecase) GetAvailableTimes(ctx context.Context, clinicID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	return f.getFn(ctx, clinicID, date)
}

type fakeClinicUsecase struct{}

func (f *fakeClinicUsecase) CreateClinic(ctx context.Context, actor usecase.Actor, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	return nil, nil
}

func (f *fakeClinicUsecase) GetClinic(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	return nil, usecase.ErrClinicNotFound
}

func (f *fakeClinicUsecase) ListClinicsByCenter(ctx context.Context, centerID uuid.UUID) (*dto.ClinicListResponse, error) {
	return &dto.ClinicListResponse{Clinics: []dto.ClinicResponse{}}, nil
}

func (f *fakeClinicUsecase) UpdateClinic(ctx context.Context, actor usecase.Actor, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	return nil, nil
}

func (f *fakeClinicUsecase) DeleteClinic(ctx context.Context, actor usecase.Actor, clinicID uuid.UUID) error {
	return nil
}

func (f *fakeClinicUsecase) ListFixedSlots(ctx context.Context, actor usecase.Actor, clinicID uuid.UUID) (*dto.FixedTimeSlotListResponse, error) {
	return nil, nil
}

func (f *fakeClinicUsecase) ReplaceFixedSlots(ctx context.Context, actor usecase.Actor, clinicID uuid.UUID, req *dto.ReplaceFixedSlotsRequest) (*dto.FixedTimeSlotListResponse, error) {
	return nil, nil
}

func (f *fakeClinicUsecase) GenerateFixedSlots(ctx context.Context, actor usecase.Actor, clinicID uuid.UUID, req *dto.GenerateFixedSlotsRequest) (*dto.FixedTimeSlotListResponse, error) {
	return nil, nil
}

func TestGetAvailableTimes(t *testing.T) {
	clinicID := uuid.New()
	availability := &fakeAvailabilityUsecase{
		getFn: func(ctx context.Context, gotClinicID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
			assert.Equal(t, clinicID, gotClinicID)
			assert.Equal(t, "2025-03-02", date)
			return &dto.AvailabilityResponse{
				ClinicID: clinicID,
				Date:     date,
				Times:    []string{"08:00", "08:14"},
			}, nil
		},
	}
	h := NewClinicHandler(&fakeClinicUsecase{}, availability, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics/"+clinicID.String()+"/availability?date=2025-03-02", nil)
	req = mux.SetURLVars(req, map[string]string{"id": clinicID.String()})
	rec := httptest.NewRecorder()
	h.GetAvailableTimes(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"times":["08:00","08:14"]`)
}

func TestGetAvailableTimesMissingDate(t *testing.T) {
	h := NewClinicHandler(&fakeClinicUsecase{}, &fakeAvailabilityUsecase{}, validator.NewValidator())

	clinicID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics/"+clinicID.String()+"/availability", nil)
	req = mux.SetURLVars(req, map[string]string{"id": clinicID.String()})
	rec := httptest.NewRecorder()
	h.GetAvailableTimes(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailableTimesInvalidDate(t *testing.T) {
	availability := &fakeAvailabilityUsecase{
		getFn: func(ctx context.Context, clinicID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
			return nil, usecase.ErrInvalidDate
		},
	}
	h := NewClinicHandler(&fakeClinicUsecase{}, availability, validator.NewValidator())

	clinicID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics/"+clinicID.String()+"/availability?date=02-03-2025", nil)
	req = mux.SetURLVars(req, map[string]string{"id": clinicID.String()})
	rec := httptest.NewRecorder()
	h.GetAvailableTimes(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailableTimesDegraded(t *testing.T) {
	clinicID := uuid.New()
	availability := &fakeAvailabilityUsecase{
		getFn: func(ctx context.Context, gotClinicID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
			return &dto.AvailabilityResponse{
				ClinicID: gotClinicID,
				Date:     date,
				Times:    []string{},
				Degraded: true,
			}, nil
		},
	}
	h := NewClinicHandler(&fakeClinicUsecase{}, availability, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics/"+clinicID.String()+"/availability?date=2025-03-02", nil)
	req = mux.SetURLVars(req, map[string]string{"id": clinicID.String()})
	rec := httptest.NewRecorder()
	h.GetAvailableTimes(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"times":[]`)
	assert.Contains(t, rec.Body.String(), `"degraded":true`)
}

func TestGetClinicNotFound(t *testing.T) {
	h := NewClinicHandler(&fakeClinicUsecase{}, &fakeAvailabilityUsecase{}, validator.NewValidator())

	clinicID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics/"+clinicID.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": clinicID.String()})
	rec := httptest.NewRecorder()
	h.GetClinic(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
