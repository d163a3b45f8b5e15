package api

import (
	"context"
	"net/http"
)

func (c *Client) AdminUsers(ctx context.Context) ([]AdminUser, error) {
	var out []AdminUser
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, userID string, req UpdateRoleRequest) (*AdminUser, error) {
	var out AdminUser
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+userID+"/role", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+userID, nil, nil, nil)
}
