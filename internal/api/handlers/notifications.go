package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

const defaultNotificationLimit = 50

// NotificationsProvider defines the store methods required by the
// notifications handler.
type NotificationsProvider interface {
	ListNotifications(ctx context.Context, userID string, limit int) ([]domain.NotificationRecord, error)
}

// NotificationsHandler serves notification history.
type NotificationsHandler struct {
	store NotificationsProvider
}

// NewNotificationsHandler creates a new NotificationsHandler.
func NewNotificationsHandler(s NotificationsProvider) *NotificationsHandler {
	return &NotificationsHandler{store: s}
}

// ListNotificationsInput filters the notification history.
type ListNotificationsInput struct {
	UserID string `query:"user_id" doc:"Only notifications for this user"`
	Limit  int    `query:"limit"   doc:"Number of results (default 50)"   minimum:"0" maximum:"500"`
}

// ListNotificationsOutput is the notification history, newest first.
type ListNotificationsOutput struct {
	Body []domain.NotificationRecord
}

// List returns recent notifications, optionally for a single user.
func (h *NotificationsHandler) List(
	ctx context.Context,
	input *ListNotificationsInput,
) (*ListNotificationsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultNotificationLimit
	}

	recs, err := h.store.ListNotifications(ctx, input.UserID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing notifications: " + err.Error())
	}
	if recs == nil {
		recs = []domain.NotificationRecord{}
	}
	return &ListNotificationsOutput{Body: recs}, nil
}

// RegisterNotificationRoutes registers notification endpoints with the Huma API.
func RegisterNotificationRoutes(api huma.API, h *NotificationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notifications",
		Method:      http.MethodGet,
		Path:        "/api/v1/notifications",
		Summary:     "List notifications",
		Description: "Returns sent and failed price alerts, newest first.",
		Tags:        []string{"notifications"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)
}
