package cms

import (
	"context"
	"strconv"

	"jobboard/internal/domain"
)

// ListNotifications lists a user's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context, params NotificationListParams) (List[domain.Notification], error) {
	return getList[domain.Notification](ctx, c, "/api/notifications?"+BuildNotificationQuery(params), "Failed to fetch notifications")
}

// UnreadCount reports how many unread notifications a user has. The count
// is derived from pagination metadata of a single-item page rather than a
// dedicated count endpoint.
func (c *Client) UnreadCount(ctx context.Context, userID int) (int, error) {
	path := "/api/notifications?filters[users_permissions_user][id][$eq]=" + strconv.Itoa(userID) +
		"&filters[isRead][$eq]=false&pagination[pageSize]=1"
	list, err := getList[domain.Notification](ctx, c, path, "Failed to fetch unread notification count")
	if err != nil {
		return 0, err
	}
	return list.Pagination.Total, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int) (domain.Notification, error) {
	body := dataBody(map[string]any{"isRead": true})
	var env detailEnvelope
	if err := c.do(ctx, "PUT", "/api/notifications/"+strconv.Itoa(id), body, &env, "Failed to mark notification as read"); err != nil {
		return domain.Notification{}, err
	}
	return decodeEntry[domain.Notification](env.Data)
}

// MarkAllNotificationsRead flags every notification of a user as read via
// the backend's bulk endpoint.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID int) error {
	body := map[string]any{"userId": userID}
	return c.do(ctx, "POST", "/api/notifications/mark-all-read", body, nil, "Failed to mark all notifications as read")
}

// DeleteNotification removes one notification.
func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	return c.do(ctx, "DELETE", "/api/notifications/"+strconv.Itoa(id), nil, nil, "Failed to delete notification")
}
