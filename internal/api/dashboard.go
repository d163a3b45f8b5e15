package api

import (
	"context"
	"net/http"
)

func (c *Client) SeekerDashboard(ctx context.Context) (*SeekerDashboard, error) {
	var out SeekerDashboard
	if err := c.do(ctx, http.MethodGet, "/dashboard/seeker", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompanyDashboard(ctx context.Context) (*CompanyDashboard, error) {
	var out CompanyDashboard
	if err := c.do(ctx, http.MethodGet, "/dashboard/company", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	var out AdminDashboard
	if err := c.do(ctx, http.MethodGet, "/dashboard/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
