package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shifacare/medcenter-booking/internal/usecase"
)

// ReminderHandler serves the sweep endpoint polled by an external cron.
// Its JSON shape is part of the cron contract and deliberately differs
// from the standard response envelope.
type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
	}
}

func (h *ReminderHandler) SweepUpcoming(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	result, err := h.reminderUsecase.SweepUpcoming(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to process reminders"})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
