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

type MedicalCenterHandler struct {
	centerUsecase usecase.MedicalCenterUsecase
	validator     *validator.CustomValidator
}

func NewMedicalCenterHandler(centerUsecase usecase.MedicalCenterUsecase, validator *validator.CustomValidator) *MedicalCenterHandler {
	return &MedicalCenterHandler{
		centerUsecase: centerUsecase,
		validator:     validator,
	}
}

func (h *MedicalCenterHandler) ListActiveCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.centerUsecase.ListActiveCenters(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medical centers")
		return
	}

	response.Success(w, http.StatusOK, "Medical centers retrieved successfully", centers)
}

func (h *MedicalCenterHandler) ListAllCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.centerUsecase.ListAllCenters(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medical centers")
		return
	}

	response.Success(w, http.StatusOK, "Medical centers retrieved successfully", centers)
}

func (h *MedicalCenterHandler) GetCenter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical center ID", nil)
		return
	}

	center, err := h.centerUsecase.GetCenter(r.Context(), centerID)
	if err != nil {
		switch err {
		case usecase.ErrCenterNotFound:
			response.NotFound(w, "Medical center not found")
		default:
			response.InternalServerError(w, "Failed to get medical center")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical center retrieved successfully", center)
}

func (h *MedicalCenterHandler) CreateCenter(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicalCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	center, err := h.centerUsecase.CreateCenter(r.Context(), actor, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medical center")
		return
	}

	response.Success(w, http.StatusCreated, "Medical center created successfully", center)
}

func (h *MedicalCenterHandler) UpdateCenter(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	centerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical center ID", nil)
		return
	}

	var req dto.UpdateMedicalCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	center, err := h.centerUsecase.UpdateCenter(r.Context(), actor, centerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCenterNotFound:
			response.NotFound(w, "Medical center not found")
		default:
			response.InternalServerError(w, "Failed to update medical center")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical center updated successfully", center)
}

func (h *MedicalCenterHandler) DeleteCenter(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	centerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical center ID", nil)
		return
	}

	if err := h.centerUsecase.DeleteCenter(r.Context(), actor, centerID); err != nil {
		switch err {
		case usecase.ErrCenterNotFound:
			response.NotFound(w, "Medical center not found")
		default:
			response.InternalServerError(w, "Failed to delete medical center")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical center deleted successfully", nil)
}
