package app

import (
	"github.com/gorilla/mux"
	"github.com/slotcal/slotcal/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Schedules
	r.HandleFunc("/get_schedules/{identity}", deps.ScheduleHandler.GetSchedules).Methods("GET")
	r.HandleFunc("/save_schedules/", deps.ScheduleHandler.SaveSchedules).Methods("POST")

	// Notifications
	r.HandleFunc("/notifications/{identity}/today", deps.NotificationHandler.TodaySummary).Methods("GET")
}
