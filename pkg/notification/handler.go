package notification

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TodaySummary godoc
// @Summary Today's events banner for an identity
// @Produce json
// @Param identity path string true "Identity"
// @Success 200 {object} Summary
// @Router /notifications/{identity}/today [get]
func (h *Handler) TodaySummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	identity := vars["identity"]

	summary, err := h.service.TodaySummary(r.Context(), identity)
	if err != nil {
		log.Errorf("failed to build today summary: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		if encodeErr := json.NewEncoder(w).Encode(summary); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
