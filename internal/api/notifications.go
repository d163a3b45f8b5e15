package api

import (
	"context"
	"net/http"
)

func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out UnreadCountResponse
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+id+"/read", nil, nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+id, nil, nil, nil)
}
