package worker

import (
	"go.uber.org/zap"

	"github.com/lawfirm/site-api/internal/service"
)

// StartNotificationWorker subscribes the notification service to contact
// and FAQ events. Delivery is synchronous on the publishing request.
func StartNotificationWorker(notifications *service.NotificationService, logger *zap.Logger) {
	if notifications == nil {
		logger.Warn("notification service missing; events will not be delivered")
		return
	}
	notifications.RegisterHandlers()
	logger.Info("notification handlers registered")
}
