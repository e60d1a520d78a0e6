package schedule

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/slotcal/slotcal/internal/rest"
)

type Handler struct {
	service *Service
}

// SaveRequest is the body of a save_schedules call: the identity the mapping
// belongs to and the full mapping itself, never a delta.
type SaveRequest struct {
	Identity  string   `json:"identity"`
	Schedules Schedule `json:"schedules"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetSchedules godoc
// @Summary Get the full schedule mapping of an identity
// @Produce json
// @Param identity path string true "Identity"
// @Success 200 {object} Schedule
// @Router /get_schedules/{identity} [get]
func (h *Handler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	identity := vars["identity"]
	log.Debugf("Getting schedules for %q", identity)

	mapping, err := h.service.GetSchedule(r.Context(), identity)
	if err != nil {
		if errors.Is(err, ErrMissingIdentity) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Identity is required",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// SaveSchedules godoc
// @Summary Replace the full schedule mapping of an identity
// @Accept json
// @Param request body SaveRequest true "Identity and full mapping"
// @Success 204
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /save_schedules/ [post]
func (h *Handler) SaveSchedules(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	log.Debugf("Saving schedules for %q (%d days)", request.Identity, len(request.Schedules))

	if err := h.service.ReplaceSchedule(r.Context(), request.Identity, request.Schedules); err != nil {
		if errors.Is(err, ErrMissingIdentity) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Identity is required",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
