package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/usecase"
	"github.com/shifacare/medcenter-booking/pkg/response"
	"github.com/shifacare/medcenter-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ClinicHandler struct {
	clinicUsecase       usecase.ClinicUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewClinicHandler(
	clinicUsecase usecase.ClinicUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
	validator *validator.CustomValidator,
) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase:       clinicUsecase,
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *ClinicHandler) ListClinicsByCenter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical center ID", nil)
		return
	}

	clinics, err := h.clinicUsecase.ListClinicsByCenter(r.Context(), centerID)
	if err != nil {
		response.InternalServerError(w, "Failed to get clinics")
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	clinic, err := h.clinicUsecase.GetClinic(r.Context(), clinicID)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		default:
			response.InternalServerError(w, "Failed to get clinic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}

// GetAvailableTimes serves the booking form's time picker: candidate slots
// for the clinic on the requested date, minus already-booked times.
func (h *ClinicHandler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
		return
	}

	availability, err := h.availabilityUsecase.GetAvailableTimes(r.Context(), clinicID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		default:
			response.InternalServerError(w, "Failed to get available times")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available times retrieved successfully", availability)
}

func (h *ClinicHandler) CreateClinic(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.CreateClinic(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrCenterNotFound:
			response.NotFound(w, "Medical center not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to create clinic")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Clinic created successfully", clinic)
}

func (h *ClinicHandler) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	var req dto.UpdateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.UpdateClinic(r.Context(), actor, clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to update clinic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic updated successfully", clinic)
}

func (h *ClinicHandler) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	if err := h.clinicUsecase.DeleteClinic(r.Context(), actor, clinicID); err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to delete clinic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic deleted successfully", nil)
}

func (h *ClinicHandler) ListFixedSlots(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	slots, err := h.clinicUsecase.ListFixedSlots(r.Context(), actor, clinicID)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to get fixed time slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Fixed time slots retrieved successfully", slots)
}

func (h *ClinicHandler) ReplaceFixedSlots(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	var req dto.ReplaceFixedSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.clinicUsecase.ReplaceFixedSlots(r.Context(), actor, clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to replace fixed time slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Fixed time slots replaced successfully", slots)
}

func (h *ClinicHandler) GenerateFixedSlots(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	var req dto.GenerateFixedSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.clinicUsecase.GenerateFixedSlots(r.Context(), actor, clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		case usecase.ErrInvalidSlotInterval, usecase.ErrInvalidSlotWindow:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to generate fixed time slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Fixed time slots generated successfully", slots)
}
