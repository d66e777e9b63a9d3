package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/delivery/http/middleware"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	"github.com/shifacare/medcenter-booking/internal/scheduling"
	"github.com/shifacare/medcenter-booking/internal/usecase"
	"github.com/shifacare/medcenter-booking/pkg/response"
	"github.com/shifacare/medcenter-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var (
	errInvalidCenterIDParam = errors.New("invalid medical_center_id parameter")
	errInvalidClinicIDParam = errors.New("invalid clinic_id parameter")
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrClinicInactive, usecase.ErrSlotNotOffered, usecase.ErrInvalidDate,
			scheduling.ErrInvalidPatientAge, scheduling.ErrPediatricsAgeTooHigh,
			scheduling.ErrInternalMedicineAgeTooLow, scheduling.ErrObstetricsGender:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrSlotTaken:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelMyAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.CancelMyAppointment(r.Context(), userID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotCancellable:
			response.Conflict(w, "Only pending appointments can be cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// ListAppointments is the admin review queue. Filters come from the query
// string; center admins are scoped to their own centers in the usecase.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), actor, filter)
	if err != nil {
		switch err {
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) ApproveAppointment(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.appointmentUsecase.ApproveAppointment, "Appointment approved successfully")
}

func (h *AppointmentHandler) RejectAppointment(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.appointmentUsecase.RejectAppointment, "Appointment rejected successfully")
}

func (h *AppointmentHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, actor usecase.Actor, id uuid.UUID, req *dto.DecideAppointmentRequest) (*dto.AppointmentResponse, error),
	successMessage string,
) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	// An empty body is a decision without notes; anything else must parse.
	var req dto.DecideAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, err := action(r.Context(), actor, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		case usecase.ErrAlreadyDecided:
			response.Conflict(w, "Appointment has already been decided")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, successMessage, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), actor, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func filterFromQuery(r *http.Request) (*entity.AppointmentFilter, error) {
	filter := &entity.AppointmentFilter{
		Date:        r.URL.Query().Get("date"),
		Status:      r.URL.Query().Get("status"),
		PatientName: r.URL.Query().Get("patient_name"),
	}

	if raw := r.URL.Query().Get("medical_center_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errInvalidCenterIDParam
		}
		filter.MedicalCenterID = id
	}
	if raw := r.URL.Query().Get("clinic_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errInvalidClinicIDParam
		}
		filter.ClinicID = id
	}

	return filter, nil
}
