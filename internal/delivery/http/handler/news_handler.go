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

type NewsHandler struct {
	newsUsecase usecase.NewsUsecase
	validator   *validator.CustomValidator
}

func NewNewsHandler(newsUsecase usecase.NewsUsecase, validator *validator.CustomValidator) *NewsHandler {
	return &NewsHandler{
		newsUsecase: newsUsecase,
		validator:   validator,
	}
}

func (h *NewsHandler) ListPublishedNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsUsecase.ListPublishedNews(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get news")
		return
	}

	response.Success(w, http.StatusOK, "News retrieved successfully", news)
}

func (h *NewsHandler) ListAllNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsUsecase.ListAllNews(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get news")
		return
	}

	response.Success(w, http.StatusOK, "News retrieved successfully", news)
}

func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	news, err := h.newsUsecase.GetNews(r.Context(), newsID)
	if err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "News item not found")
		default:
			response.InternalServerError(w, "Failed to get news")
		}
		return
	}

	response.Success(w, http.StatusOK, "News retrieved successfully", news)
}

func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	news, err := h.newsUsecase.CreateNews(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to create news")
		}
		return
	}

	response.Success(w, http.StatusCreated, "News created successfully", news)
}

func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	var req dto.UpdateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	news, err := h.newsUsecase.UpdateNews(r.Context(), actor, newsID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "News item not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to update news")
		}
		return
	}

	response.Success(w, http.StatusOK, "News updated successfully", news)
}

func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	if err := h.newsUsecase.DeleteNews(r.Context(), actor, newsID); err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "News item not found")
		case usecase.ErrCenterForbidden:
			response.Forbidden(w, "You don't administer this medical center")
		default:
			response.InternalServerError(w, "Failed to delete news")
		}
		return
	}

	response.Success(w, http.StatusOK, "News deleted successfully", nil)
}
