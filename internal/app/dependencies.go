package app

import (
	"database/sql"

	"github.com/slotcal/slotcal/internal/config"
	"github.com/slotcal/slotcal/internal/utils"
	"github.com/slotcal/slotcal/pkg/notification"
	"github.com/slotcal/slotcal/pkg/schedule"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	ScheduleRepository *schedule.RepositoryImpl
	ScheduleService    *schedule.Service
	ScheduleHandler    *schedule.Handler

	NotificationService *notification.Service
	NotificationHandler *notification.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.ScheduleRepository = schedule.NewRepository(db)
	deps.ScheduleService = schedule.NewService(deps.ScheduleRepository)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleService)

	deps.Clock = &utils.SystemClock{}
	deps.NotificationService = notification.NewService(deps.ScheduleService, deps.Clock)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationService)

	return deps
}
