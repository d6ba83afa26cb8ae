package worker

import (
	"github.com/spec-kit/booking-service/internal/service"
)

// StartActivityWorker registers booking lifecycle handlers.
func StartActivityWorker(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
